package strq

import "encoding/json"

// MarshalJSON renders the queue as a JSON array of strings, front to
// back, so queues can stand in for arrays inside larger documents.
func (q *Queue) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Slice())
}

// UnmarshalJSON appends the values of a JSON string array to the back
// of the queue. Existing elements are not removed. An allocation
// failure aborts the append partway, leaving the values inserted so
// far linked.
func (q *Queue) UnmarshalJSON(in []byte) error {
	if q == nil {
		return ErrInvalidArgument
	}

	vals := []string{}
	if err := json.Unmarshal(in, &vals); err != nil {
		return err
	}

	for _, v := range vals {
		if err := q.InsertTail(v); err != nil {
			return err
		}
	}
	return nil
}
