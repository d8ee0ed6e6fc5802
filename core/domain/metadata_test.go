package domain

import (
	"testing"
	"time"

	coreerrors "searchpilot-api/core/errors"
)

func TestNewMetadata(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     MetadataInput
		wantErr   bool
		wantField string
	}{
		{
			name: "valid record",
			input: MetadataInput{
				URL:         "https://example.com/page",
				Title:       "Example",
				Description: "An example page",
				Keywords:    "go, search",
			},
		},
		{
			name: "valid record without keywords",
			input: MetadataInput{
				URL:         "http://example.com",
				Title:       "Example",
				Description: "An example page",
			},
		},
		{
			name:      "blank title",
			input:     MetadataInput{URL: "https://example.com", Title: "   ", Description: "d"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "missing description",
			input:     MetadataInput{URL: "https://example.com", Title: "t"},
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "non http scheme",
			input:     MetadataInput{URL: "ftp://example.com", Title: "t", Description: "d"},
			wantErr:   true,
			wantField: "url",
		},
		{
			name:      "not a url",
			input:     MetadataInput{URL: "example", Title: "t", Description: "d"},
			wantErr:   true,
			wantField: "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := NewMetadata(tt.input, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMetadata() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				verr, ok := err.(*coreerrors.ValidationError)
				if !ok {
					t.Fatalf("NewMetadata() error type = %T, want *ValidationError", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
				}
				return
			}
			if record.ID == "" {
				t.Error("NewMetadata() did not generate ID")
			}
			if !record.CreatedAt.Equal(now) || !record.UpdatedAt.Equal(now) {
				t.Errorf("timestamps = %v/%v, want %v", record.CreatedAt, record.UpdatedAt, now)
			}
			if record.Keywords != tt.input.Keywords {
				t.Errorf("Keywords = %q, want raw %q", record.Keywords, tt.input.Keywords)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		in      string
		want    DateRange
		wantErr bool
	}{
		{"", DateRangeAll, false},
		{"all", DateRangeAll, false},
		{"7", DateRangeWeek, false},
		{"30", DateRangeMonth, false},
		{"90", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDateRange(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDateRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDateRange(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateRange_Window(t *testing.T) {
	if _, ok := DateRangeAll.Window(); ok {
		t.Error("DateRangeAll should not be bounded")
	}
	if w, ok := DateRangeWeek.Window(); !ok || w != 7*24*time.Hour {
		t.Errorf("DateRangeWeek.Window() = %v, %v", w, ok)
	}
	if w, ok := DateRangeMonth.Window(); !ok || w != 30*24*time.Hour {
		t.Errorf("DateRangeMonth.Window() = %v, %v", w, ok)
	}
}
