package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		args    []string
		want    string
	}{
		{"sum", domain.ProfileClassic, []string{"2+2"}, "4\n"},
		{"display glyphs", domain.ProfileClassic, []string{"12", "×", "3"}, "36\n"},
		{"full precision", domain.ProfileClassic, []string{"7/2"}, "3.5\n"},
		{"two decimals", domain.ProfileExtended, []string{"7/2"}, "3.50\n"},
		{"division by zero", domain.ProfileClassic, []string{"1/0"}, "Cannot divide by zero\n"},
		{"undefined", domain.ProfileClassic, []string{"0/0"}, "Result is undefined\n"},
		{"trailing operator", domain.ProfileClassic, []string{"5+"}, "Undefined\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTestServices(t, tt.profile)

			out, err := execute(t, "", append([]string{"eval"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCmd_JSON(t *testing.T) {
	useTestServices(t, domain.ProfileClassic)

	out, err := execute(t, "", "eval", "--json", "9÷0")

	require.NoError(t, err)
	var result evalResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "9÷0", result.Expression)
	assert.Equal(t, domain.MessageDivisionByZero, result.Display)
	assert.Equal(t, "error", result.Phase)
	assert.True(t, result.IsError)
}

func TestEvalCmd_UnknownKey(t *testing.T) {
	useTestServices(t, domain.ProfileClassic)

	_, err := execute(t, "", "eval", "√9")

	assert.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestEvalCmd_RequiresExpression(t *testing.T) {
	useTestServices(t, domain.ProfileClassic)

	_, err := execute(t, "", "eval")

	assert.Error(t, err)
}

func TestEvalCmd_NoCalculator(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "", "eval", "1")

	assert.EqualError(t, err, "calculator not configured")
}
