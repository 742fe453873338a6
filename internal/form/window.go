package form

import (
	"errors"
	"net/url"
	"strconv"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
)

// WindowQuery holds the analysis window query parameters.
type WindowQuery struct {
	Preset        string `json:"preset"`
	From          string `json:"from"`
	To            string `json:"to"`
	Compare       string `json:"compare"`
	ComparePreset string `json:"compare_preset"`
	CompareFrom   string `json:"compare_from"`
	CompareTo     string `json:"compare_to"`
}

func WindowQueryFromValues(q url.Values) *WindowQuery {
	return &WindowQuery{
		Preset:        q.Get("preset"),
		From:          q.Get("from"),
		To:            q.Get("to"),
		Compare:       q.Get("compare"),
		ComparePreset: q.Get("compare_preset"),
		CompareFrom:   q.Get("compare_from"),
		CompareTo:     q.Get("compare_to"),
	}
}

func (r *WindowQuery) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.From, v.By(validDate), v.When(r.To != "", v.Required.Error("is required when to is set"))),
		v.Field(&r.To, v.By(validDate), v.When(r.From != "", v.Required.Error("is required when from is set"))),
		v.Field(&r.Compare, v.By(validBool)),
		v.Field(&r.CompareFrom, v.By(validDate), v.When(r.CompareTo != "", v.Required.Error("is required when compare_to is set"))),
		v.Field(&r.CompareTo, v.By(validDate), v.When(r.CompareFrom != "", v.Required.Error("is required when compare_from is set"))),
	)
}

// Request converts a validated query into a resolver request.
func (r *WindowQuery) Request() daterange.WindowRequest {
	compare, _ := strconv.ParseBool(r.Compare)
	return daterange.WindowRequest{
		Preset:        r.Preset,
		From:          r.From,
		To:            r.To,
		Compare:       compare,
		ComparePreset: r.ComparePreset,
		CompareFrom:   r.CompareFrom,
		CompareTo:     r.CompareTo,
	}
}

// MembersQuery selects one category of one partition.
type MembersQuery struct {
	Kind     string
	Category string
}

const (
	KindBehavior = "behavior"
	KindSpending = "spending"
)

func (r *MembersQuery) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Kind, v.Required, v.In(KindBehavior, KindSpending)),
		v.Field(&r.Category, v.Required, v.By(r.validCategory)),
	)
}

// Filter converts a validated query into a member filter.
func (r *MembersQuery) Filter() entity.MemberFilter {
	if r.Kind == KindBehavior {
		return entity.MemberFilter{Behavior: entity.BehaviorCategory(r.Category)}
	}
	return entity.MemberFilter{Spending: entity.SpendingCategory(r.Category)}
}

func (r *MembersQuery) validCategory(value interface{}) error {
	s, _ := value.(string)
	switch r.Kind {
	case KindBehavior:
		if !entity.BehaviorCategory(s).Valid() {
			return errors.New("unknown behavior category")
		}
	case KindSpending:
		if !entity.SpendingCategory(s).Valid() {
			return errors.New("unknown spending category")
		}
	}
	return nil
}

func validDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" || daterange.ValidDate(s) {
		return nil
	}
	return errors.New("must be a date in YYYY-MM-DD or RFC3339 format")
}

func validBool(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseBool(s); err != nil {
		return errors.New("must be a boolean")
	}
	return nil
}
