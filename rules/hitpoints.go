package rules

import (
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidHitPoints = errors.New("hit points must be a number or a string")

// HitPoints is either an average (a number) or a special description such as "equal to the summoner's level".
// It is served as a JSON number or a JSON string accordingly.
type HitPoints struct {
	Average int
	Special string
}

func (hp HitPoints) IsSpecial() bool {
	return hp.Special != ""
}

func (hp HitPoints) String() string {
	if hp.IsSpecial() {
		return hp.Special
	}
	return strconv.Itoa(hp.Average)
}

func (hp HitPoints) MarshalJSON() ([]byte, error) {
	if hp.IsSpecial() {
		return json.Marshal(hp.Special)
	}
	return json.Marshal(hp.Average)
}

func (hp *HitPoints) UnmarshalJSON(data []byte) error {
	var special string
	if err := json.Unmarshal(data, &special); err == nil {
		*hp = HitPoints{Special: special}
		return nil
	}

	var average int
	if err := json.Unmarshal(data, &average); err != nil {
		return ErrInvalidHitPoints
	}

	*hp = HitPoints{Average: average}
	return nil
}
