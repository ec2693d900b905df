package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictConstructors(t *testing.T) {
	assert.Equal(t, Verdict{Result: ResultValid}, Valid())
	assert.Equal(t, Verdict{Result: ResultInvalid, Comment: "x"}, Invalid("x"))
	assert.Equal(t, Verdict{Result: ResultRecheck, Comment: "y"}, Recheck("y"))
	assert.True(t, Verdict{}.IsZero())
	assert.False(t, Valid().IsZero())
}

func TestResult_Known(t *testing.T) {
	assert.True(t, ResultValid.Known())
	assert.True(t, ResultInvalid.Known())
	assert.True(t, ResultRecheck.Known())
	assert.False(t, Result("valid").Known())
	assert.False(t, Result("").Known())
}

func TestVerdict_JSONOmitsEmptyComment(t *testing.T) {
	data, err := json.Marshal(Valid())
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"VALID"}`, string(data))

	data, err = json.Marshal(Invalid("Prooflink is empty"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"INVALID","comment":"Prooflink is empty"}`, string(data))
}
