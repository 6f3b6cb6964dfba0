package action

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		face bool
		hand bool
		want Label
	}{
		{name: "face and hand", face: true, hand: true, want: Working},
		{name: "face only", face: true, hand: false, want: UsingPhone},
		{name: "hand only", face: false, hand: true, want: UsingPhone},
		{name: "nothing", face: false, hand: false, want: UsingPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.face, tt.hand); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.face, tt.hand, got, tt.want)
			}
		})
	}
}

func TestClassify_Repeatable(t *testing.T) {
	// Calling in a different order must not change any answer.
	first := Classify(true, true)
	Classify(false, false)
	Classify(true, false)
	if again := Classify(true, true); again != first {
		t.Errorf("Classify(true, true) = %v after other calls, want %v", again, first)
	}
}

func TestLabel_String(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{Working, "Working"},
		{UsingPhone, "Using Phone"},
		{Label(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.label.String(); got != tt.want {
			t.Errorf("Label(%d).String() = %q, want %q", int(tt.label), got, tt.want)
		}
	}
}
