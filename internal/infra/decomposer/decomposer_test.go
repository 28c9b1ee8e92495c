package decomposer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/focus-pulse/internal/domain"
)

type fakeGenerator struct {
	err     error
	text    string
	prompts []string
	block   bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func TestDecompose_NoKey(t *testing.T) {
	d := New(domain.AIConfig{}, nil)

	got := d.Decompose(context.Background(), "Clean kitchen")

	assert.Equal(t, []string{"Start simply", "Do the first logical step", "Review progress"}, got)
}

func TestDecompose_NilGenerator(t *testing.T) {
	d := NewWithGenerator(nil, 0, nil)

	assert.Equal(t, NoKeySteps(), d.Decompose(context.Background(), "x"))
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		err  error
		name string
		text string
		want []string
	}{
		{
			name: "clean response",
			text: `["Clear the counter", "Wash dishes", "Wipe surfaces"]`,
			want: []string{"Clear the counter", "Wash dishes", "Wipe surfaces"},
		},
		{
			name: "trims and drops blanks",
			text: " [\"  Open laptop \", \"\", \"   \", \"Write intro\"]\n",
			want: []string{"Open laptop", "Write intro"},
		},
		{
			name: "call failure",
			err:  errors.New("quota exceeded"),
			want: []string{"Prepare materials", "Start the first part", "Take a short break", "Finish the rest"},
		},
		{
			name: "not json",
			text: "1. Do it",
			want: FailureSteps(),
		},
		{
			name: "empty result",
			text: `["", " "]`,
			want: FailureSteps(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text, err: tt.err}
			d := NewWithGenerator(gen, time.Second, nil)

			got := d.Decompose(context.Background(), "Clean kitchen")

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecompose_Prompt(t *testing.T) {
	gen := &fakeGenerator{text: `["a"]`}
	d := NewWithGenerator(gen, time.Second, nil)

	d.Decompose(context.Background(), "  Pay rent ")

	assert.Equal(t, []string{
		`Break down the following task into 3 to 6 small, actionable, and non-overwhelming steps for someone with ADHD. Keep steps concise. Task: "Pay rent"`,
	}, gen.prompts)
}

func TestDecompose_Timeout(t *testing.T) {
	gen := &fakeGenerator{block: true}
	d := NewWithGenerator(gen, 10*time.Millisecond, nil)

	got := d.Decompose(context.Background(), "Clean kitchen")

	assert.Equal(t, FailureSteps(), got)
}

func TestDecompose_ListsAreFresh(t *testing.T) {
	a := NoKeySteps()
	a[0] = "mutated"

	assert.Equal(t, "Start simply", NoKeySteps()[0])
}
