package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tcs := []struct {
		a, b float64
		op   Operator
		want float64
	}{
		{a: 2, b: 3, op: OpAdd, want: 5},
		{a: 2, b: 3, op: OpSub, want: -1},
		{a: 2, b: 3, op: OpMul, want: 6},
		{a: 3, b: 2, op: OpDiv, want: 1.5},
		{a: -7.5, b: 0.5, op: OpAdd, want: -7},
		{a: 9, b: 4, op: OpNone, want: 4},
		{a: 9, b: 4, op: Operator(99), want: 4},
	}
	for _, tc := range tcs {
		got := Apply(tc.a, tc.b, tc.op)
		require.Equalf(t, tc.want, got, "Apply(%v, %v, %q)", tc.a, tc.b, tc.op)
	}
}

func TestApplyDivideByZeroIsNaN(t *testing.T) {
	for _, a := range []float64{0, 1, -1, math.Inf(1), math.MaxFloat64} {
		require.Truef(t, math.IsNaN(Apply(a, 0, OpDiv)), "Apply(%v, 0, /)", a)
	}
	require.True(t, math.IsNaN(Apply(1, math.Copysign(0, -1), OpDiv)))
}

func TestParseOperator(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub, OpMul, OpDiv} {
		got, ok := ParseOperator(op.String())
		require.True(t, ok)
		require.Equal(t, op, got)
	}
	for _, s := range []string{"", "x", "%", "++", "="} {
		_, ok := ParseOperator(s)
		require.Falsef(t, ok, "ParseOperator(%q)", s)
	}
}

func TestParseOperand(t *testing.T) {
	v, err := ParseOperand(" 42 ")
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	v, err = ParseOperand("1e400")
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	for _, s := range []string{"", "  ", "abc", "1.2.3", "Error"} {
		_, err := ParseOperand(s)
		require.Errorf(t, err, "ParseOperand(%q)", s)
	}
}

func TestParseOperandSpecialValues(t *testing.T) {
	v, err := ParseOperand("Infinity")
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	v, err = ParseOperand("-Infinity")
	require.NoError(t, err)
	require.True(t, math.IsInf(v, -1))

	v, err = ParseOperand("+NaN")
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	for _, s := range []string{"inf", "+Inf", "-inf", "INF", "infinity", "INFINITY", "nan", "NAN", "-nan"} {
		_, err := ParseOperand(s)
		require.Errorf(t, err, "ParseOperand(%q)", s)
	}
}

func TestAddSequence(t *testing.T) {
	c := New()
	c.Digit('2')
	c.Operator(OpAdd)
	c.Digit('3')
	c.Equals()
	require.Equal(t, "5.0", c.Display())
}

func TestOperatorOnEmptyBufferShowsError(t *testing.T) {
	c := New()
	c.Operator(OpAdd)
	require.Equal(t, ErrorText, c.Display())
	require.Equal(t, OpNone, c.State().Pending)
	require.Equal(t, 0.0, c.State().Accumulator)

	c.Equals()
	require.Equal(t, ErrorText, c.Display())
}

func TestFailedOperatorKeepsPreviousOperand(t *testing.T) {
	c := New()
	c.Digit('8')
	c.Operator(OpMul)
	// Nothing typed: the second operator press fails to parse.
	c.Operator(OpSub)
	st := c.State()
	require.Equal(t, ErrorText, st.Display)
	require.Equal(t, 8.0, st.Accumulator)
	require.Equal(t, OpMul, st.Pending)
}

func TestChainedOperatorsCommitLeftOperand(t *testing.T) {
	c := New()
	for _, k := range []string{"1", "2", "+", "3", "*", "4", "="} {
		require.NoError(t, c.Press(k))
	}
	// "*" overwrote "+" with 3 as the new left operand: 3*4.
	require.Equal(t, "12.0", c.Display())
}

func TestRepeatedEqualsReappliesOperator(t *testing.T) {
	c := New()
	for _, k := range []string{"2", "+", "3", "=", "="} {
		require.NoError(t, c.Press(k))
	}
	require.Equal(t, "7.0", c.Display())
}

func TestEqualsWithoutOperatorEchoesOperand(t *testing.T) {
	c := New()
	c.Digit('7')
	c.Equals()
	require.Equal(t, "7.0", c.Display())
}

func TestDivideByZeroDisplaysNaN(t *testing.T) {
	c := New()
	for _, k := range []string{"4", "/", "0", "="} {
		require.NoError(t, c.Press(k))
	}
	require.Equal(t, "NaN", c.Display())
}

func TestDigitAppendsLiterally(t *testing.T) {
	c := New()
	for _, k := range []string{"2", "+", "3", "=", "1"} {
		require.NoError(t, c.Press(k))
	}
	require.Equal(t, "5.01", c.Display())

	c.Clear()
	c.Operator(OpAdd)
	c.Digit('4')
	require.Equal(t, "Error4", c.Display())
}

func TestClearRestoresInitialState(t *testing.T) {
	sequences := [][]string{
		{},
		{"9", "9"},
		{"1", "+"},
		{"+"},
		{"5", "/", "0", "="},
		{"3", "-", "8", "=", "7"},
	}
	for _, seq := range sequences {
		c := New()
		for _, k := range seq {
			require.NoError(t, c.Press(k))
		}
		c.Clear()
		require.Equalf(t, New().State(), c.State(), "after %v", seq)
		c.Clear()
		require.Equal(t, State{}, c.State())
	}
}

func TestPressUnknownKey(t *testing.T) {
	c := New()
	c.Digit('1')
	for _, k := range []string{"", "x", "10", "%", "c"} {
		require.ErrorIs(t, c.Press(k), ErrUnknownKey)
	}
	require.Equal(t, "1", c.Display())
}
