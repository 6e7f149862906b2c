package hostcmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/vanityeth/internal/address"
)

func TestConditionFlagsResolvePrefix(t *testing.T) {
	f := conditionFlags{prefix: "deadbeef"}
	cond, err := f.resolve()
	require.NoError(t, err)
	require.Equal(t, address.ConditionPrefix, cond.Type)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, cond.Param)
}

func TestConditionFlagsResolveSuffix(t *testing.T) {
	f := conditionFlags{suffix: "cafe"}
	cond, err := f.resolve()
	require.NoError(t, err)
	require.Equal(t, address.ConditionSuffix, cond.Type)
	require.Equal(t, []byte{0xCA, 0xFE}, cond.Param)
}

func TestConditionFlagsResolveLeadingZerosMin(t *testing.T) {
	f := conditionFlags{leadingZerosMin: 5}
	cond, err := f.resolve()
	require.NoError(t, err)
	require.Equal(t, address.ConditionLeadingZerosMin, cond.Type)
	require.Equal(t, []byte{5}, cond.Param)
}

func TestConditionFlagsResolveLeadingZerosExact(t *testing.T) {
	f := conditionFlags{leadingZerosExact: 6}
	cond, err := f.resolve()
	require.NoError(t, err)
	require.Equal(t, address.ConditionLeadingZerosExact, cond.Type)
	require.Equal(t, []byte{6}, cond.Param)
}

func TestConditionFlagsRejectsNoneSet(t *testing.T) {
	f := conditionFlags{}
	_, err := f.resolve()
	require.Error(t, err)
}

func TestConditionFlagsRejectsMultipleSet(t *testing.T) {
	f := conditionFlags{prefix: "ab", suffix: "cd"}
	_, err := f.resolve()
	require.Error(t, err)
}

func TestConditionFlagsRejectsBadHex(t *testing.T) {
	f := conditionFlags{prefix: "zz"}
	_, err := f.resolve()
	require.Error(t, err)
}
