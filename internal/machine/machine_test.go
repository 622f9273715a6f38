package machine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/machine"
	"github.com/boklang/bok/internal/value"
)

func TestMachineRunStatementArithmetic(t *testing.T) {
	m := machine.New()
	err := m.RunStatement("<test>", strings.NewReader("2 3 +"))
	require.NoError(t, err)
	top, err := m.Stack.Top()
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), top)
}

func TestMachineRunStatementClearsStackOnError(t *testing.T) {
	m := machine.New()
	m.Stack.Push(value.Int(1))
	err := m.RunStatement("<test>", strings.NewReader("bogus-name-never-defined"))
	require.Error(t, err)
	assert.Equal(t, 0, m.Stack.Len())
}

func TestMachineRunStatementExitSignalPropagates(t *testing.T) {
	m := machine.New()
	err := m.RunStatement("<test>", strings.NewReader("2 exit"))
	require.Error(t, err)
	var sig value.ExitSignal
	require.ErrorAs(t, err, &sig)
	assert.Equal(t, 2, sig.Code)
}

func TestMachineOutputSnapshot(t *testing.T) {
	var buf bytes.Buffer
	m := machine.New(machine.WithOutput(&buf))
	err := m.RunStatement("<test>", strings.NewReader(`"hello" println 40 2 + println`))
	require.NoError(t, err)
	snaps.MatchSnapshot(t, buf.String())
}

func TestMachineMaxDepthGuard(t *testing.T) {
	m := machine.New(machine.WithMaxDepth(2))
	err := m.RunStatement("<test>", strings.NewReader("1 2 3"))
	require.Error(t, err)
	var limit value.ResourceLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, 2, limit.Limit)
}

func TestMachineTraceCallback(t *testing.T) {
	var traced []string
	m := machine.New(machine.WithTrace(func(op value.Value) {
		traced = append(traced, op.Repr())
	}))
	err := m.RunStatement("<test>", strings.NewReader("1 2 +"))
	require.NoError(t, err)
	assert.NotEmpty(t, traced)
}
