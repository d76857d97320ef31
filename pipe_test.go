package cove

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipe(t *testing.T) {
	t.Run("threads_envelope_left_to_right", func(t *testing.T) {
		transform := Pipe(Must[Raw], AsInt[string](0))

		out, err := transform(rawValue("P", "10"))

		require.NoError(t, err)
		assert.Equal(t, 10, out.Val)
		assert.Equal(t, "P", out.Name)
	})

	t.Run("first_failing_stage_aborts", func(t *testing.T) {
		ran := false
		counting := func(in Value[string]) (Value[int], error) {
			ran = true
			return AsInt[string](0)(in)
		}
		transform := Pipe(Must[Raw], Transformer[string, int](counting))

		_, err := transform(rawAbsent("P"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotDefined)
		assert.False(t, ran, "later stages must not run after a failure")
	})

	t.Run("second_stage_error_propagates_unwrapped", func(t *testing.T) {
		transform := Pipe(Must[Raw], AsInt[string](0))

		_, err := transform(rawValue("P", "ten"))

		require.Error(t, err)
		assert.EqualError(t, err, "P is not a number")
	})
}

func TestPipe3AndPipe4(t *testing.T) {
	t.Run("pipe3", func(t *testing.T) {
		transform := Pipe3(Must[Raw], Secret[string], AsDuration[string](0))

		out, err := transform(rawValue("TTL", "90s"))

		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, out.Val)
		assert.True(t, out.Secret)
	})

	t.Run("pipe4", func(t *testing.T) {
		transform := Pipe4(Identity[Raw], Must[Raw], Secret[string], AsISODate)

		out, err := transform(rawValue("AT", "2024-01-02T03:04:05Z"))

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), out.Val.UTC())
		assert.True(t, out.Secret)
	})
}

func TestSeq(t *testing.T) {
	t.Run("zero_stages_is_identity", func(t *testing.T) {
		in := Value[string]{Val: "v", Name: "K", Secret: true}

		out, err := Seq[string]()(in)

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("stages_run_in_order", func(t *testing.T) {
		var order []string
		stage := func(label string) Transformer[string, string] {
			return func(in Value[string]) (Value[string], error) {
				order = append(order, label)
				return derive(in, in.Val+label), nil
			}
		}

		out, err := Seq(stage("a"), stage("b"))(Value[string]{Val: "x", Name: "K"})

		require.NoError(t, err)
		assert.Equal(t, "xab", out.Val)
		assert.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("aborts_on_first_error", func(t *testing.T) {
		boom := func(in Value[string]) (Value[string], error) {
			return Value[string]{}, coerceErr(in, ErrNotDefined)
		}
		ran := false
		after := func(in Value[string]) (Value[string], error) {
			ran = true
			return in, nil
		}

		_, err := Seq(boom, after)(Value[string]{Val: "x", Name: "K"})

		require.Error(t, err)
		assert.False(t, ran)
	})
}

func TestIdentity(t *testing.T) {
	in := rawValue("K", "v")

	out, err := Identity(in)

	require.NoError(t, err)
	assert.Equal(t, in, out)
}
