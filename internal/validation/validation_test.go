package validation

import (
	"testing"

	"github.com/streakmate/streakmate/internal/models"
)

func TestHabitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "Morning Jog", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HabitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("HabitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCategory(t *testing.T) {
	for _, c := range []models.HabitCategory{
		models.CategoryHealth, models.CategoryStudy, models.CategoryWork,
		models.CategoryPersonal, models.CategoryMindfulness,
		models.CategoryFinance, models.CategoryCreative,
	} {
		if err := Category(c); err != nil {
			t.Errorf("Category(%q) error = %v, want nil", c, err)
		}
	}
	if err := Category("Chores"); err == nil {
		t.Error("Category(Chores) error = nil, want error")
	}
}

func TestCheckStatus(t *testing.T) {
	if err := CheckStatus(""); err != nil {
		t.Errorf("CheckStatus(\"\") error = %v, want nil (clear)", err)
	}
	if err := CheckStatus(models.StatusDone); err != nil {
		t.Errorf("CheckStatus(done) error = %v, want nil", err)
	}
	if err := CheckStatus("finished"); err == nil {
		t.Error("CheckStatus(finished) error = nil, want error")
	}
}

func TestPriority(t *testing.T) {
	if err := Priority(models.PriorityMedium); err != nil {
		t.Errorf("Priority(Medium) error = %v, want nil", err)
	}
	if err := Priority("Urgent"); err == nil {
		t.Error("Priority(Urgent) error = nil, want error")
	}
}

func TestMood(t *testing.T) {
	if err := Mood(models.MoodGrateful); err != nil {
		t.Errorf("Mood(Grateful) error = %v, want nil", err)
	}
	if err := Mood("Angry"); err == nil {
		t.Error("Mood(Angry) error = nil, want error")
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		pages   int
		wantErr bool
	}{
		{"positive", 320, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TotalPages(tt.pages)
			if (err != nil) != tt.wantErr {
				t.Errorf("TotalPages(%d) error = %v, wantErr %v", tt.pages, err, tt.wantErr)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{"valid", "2025-03-09", false},
		{"wrong layout", "09-03-2025", true},
		{"garbage", "someday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Date(tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("Date(%q) error = %v, wantErr %v", tt.day, err, tt.wantErr)
			}
		})
	}
}
