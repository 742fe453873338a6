package form

import (
	"net/url"
	"testing"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowQueryValidate(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ok    bool
	}{
		{"empty", "", true},
		{"preset", "preset=last-7-days", true},
		{"unknown preset falls back later", "preset=whenever", true},
		{"custom range", "from=2025-05-01&to=2025-05-31", true},
		{"rfc3339", "from=2025-05-01T00:00:00Z&to=2025-05-31T00:00:00Z", true},
		{"comparison", "compare=true&compare_from=2025-04-01&compare_to=2025-04-30", true},
		{"malformed from", "from=2025-13-01&to=2025-05-31", false},
		{"half open range", "from=2025-05-01", false},
		{"bad compare flag", "compare=maybe", false},
		{"half open compare range", "compare=1&compare_to=2025-04-30", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			err = WindowQueryFromValues(q).Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, gerr.ErrInvalidRequest)
		})
	}
}

func TestWindowQueryRequest(t *testing.T) {
	q, err := url.ParseQuery("preset=this-month&compare=true&compare_preset=last-month")
	require.NoError(t, err)

	req := WindowQueryFromValues(q).Request()
	assert.Equal(t, "this-month", req.Preset)
	assert.True(t, req.Compare)
	assert.Equal(t, "last-month", req.ComparePreset)
}

func TestValidationErrorListsEveryField(t *testing.T) {
	err := (&WindowQuery{From: "nope", To: "2025-01-01", Compare: "x"}).Validate()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 2)
	assert.Contains(t, ve.Violations[0], "Compare: ")
}

func TestMembersQuery(t *testing.T) {
	q := &MembersQuery{Kind: KindBehavior, Category: "lost"}
	require.NoError(t, q.Validate())
	assert.Equal(t, entity.MemberFilter{Behavior: entity.BehaviorLost}, q.Filter())

	q = &MembersQuery{Kind: KindSpending, Category: "premium"}
	require.NoError(t, q.Validate())
	assert.Equal(t, entity.MemberFilter{Spending: entity.SpendingPremium}, q.Filter())

	assert.ErrorIs(t, (&MembersQuery{Kind: KindSpending, Category: "lost"}).Validate(), gerr.ErrInvalidRequest)
	assert.ErrorIs(t, (&MembersQuery{Kind: "loyalty", Category: "lost"}).Validate(), gerr.ErrInvalidRequest)
}
