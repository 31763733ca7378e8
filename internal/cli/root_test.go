package cli

import (
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "full names mixed case",
			input: "Saturday,SUNDAY",
			want:  []time.Weekday{time.Saturday, time.Sunday},
		},
		{
			name:  "numeric",
			input: "0,6",
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:    "invalid day",
			input:   "mon,blursday",
			wantErr: true,
		},
		{
			name:    "out of range number",
			input:   "7",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		name string
		days []time.Weekday
		want string
	}{
		{
			name: "all seven days",
			days: []time.Weekday{
				time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			},
			want: "daily",
		},
		{
			name: "subset",
			days: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			want: "Mon,Wed,Fri",
		},
		{
			name: "empty",
			days: nil,
			want: "unscheduled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFrequency(tt.days); got != tt.want {
				t.Errorf("FormatFrequency() = %q, want %q", got, tt.want)
			}
		})
	}
}
