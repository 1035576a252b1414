// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

package popularity

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/Shinsina/most-popular-content/internal/models"
)

const (
	testDefaultLimit = 10
	testMaxLimit     = 50
)

func TestNormalizeValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  url.Values
		wantMsg string
	}{
		{
			name:    "missing tenant",
			params:  url.Values{"realm": {"default"}},
			wantMsg: "The tenant query param must be provided.",
		},
		{
			name:    "empty tenant",
			params:  url.Values{"tenant": {""}, "realm": {"default"}},
			wantMsg: "The tenant query param must be provided.",
		},
		{
			name:    "missing realm",
			params:  url.Values{"tenant": {"acme"}},
			wantMsg: "The realm query param must be provided.",
		},
		{
			name:    "unsupported granularity",
			params:  url.Values{"tenant": {"acme"}, "realm": {"default"}, "granularity": {"year"}},
			wantMsg: "The provided granularity is not supported (expected one of: week, month)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.params, testDefaultLimit, testMaxLimit)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	query, err := Normalize(url.Values{"tenant": {"acme"}, "realm": {"default"}}, testDefaultLimit, testMaxLimit)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if query.Granularity != models.GranularityWeek {
		t.Errorf("granularity = %q, want week", query.Granularity)
	}
	if query.Limit != testDefaultLimit {
		t.Errorf("limit = %d, want %d", query.Limit, testDefaultLimit)
	}
	if query.Types != nil {
		t.Errorf("types = %v, want nil", query.Types)
	}
	if query.IncludeIDs != nil {
		t.Errorf("includeIds = %v, want nil", query.IncludeIDs)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		want  int
	}{
		{"missing uses default", "", testDefaultLimit},
		{"valid value kept", "25", 25},
		{"minimum kept", "1", 1},
		{"above max clamped", "500", testMaxLimit},
		{"zero uses default", "0", testDefaultLimit},
		{"negative uses default", "-3", testDefaultLimit},
		{"non-numeric uses default", "abc", testDefaultLimit},
		{"float uses default", "2.5", testDefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{"tenant": {"acme"}, "realm": {"default"}}
			if tt.limit != "" {
				params.Set("limit", tt.limit)
			}
			query, err := Normalize(params, testDefaultLimit, testMaxLimit)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if query.Limit != tt.want {
				t.Errorf("limit = %d, want %d", query.Limit, tt.want)
			}
		})
	}
}

func TestNormalizeTypesAndIDs(t *testing.T) {
	params := url.Values{
		"tenant":      {"acme"},
		"realm":       {"default"},
		"granularity": {"month"},
		"types":       {"video, article,video, ,article"},
		"includeIds":  {"3,1,abc,0,3, 2"},
	}

	query, err := Normalize(params, testDefaultLimit, testMaxLimit)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if query.Granularity != models.GranularityMonth {
		t.Errorf("granularity = %q, want month", query.Granularity)
	}
	wantTypes := []string{"article", "video"}
	if !reflect.DeepEqual(query.Types, wantTypes) {
		t.Errorf("types = %v, want %v", query.Types, wantTypes)
	}
	wantIDs := []int64{1, 2, 3}
	if !reflect.DeepEqual(query.IncludeIDs, wantIDs) {
		t.Errorf("includeIds = %v, want %v", query.IncludeIDs, wantIDs)
	}
}

func TestNormalizeAllInvalidTokens(t *testing.T) {
	params := url.Values{
		"tenant":     {"acme"},
		"realm":      {"default"},
		"types":      {" , ,"},
		"includeIds": {"abc,0,x"},
	}

	query, err := Normalize(params, testDefaultLimit, testMaxLimit)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if query.Types != nil {
		t.Errorf("types = %v, want nil", query.Types)
	}
	if query.IncludeIDs != nil {
		t.Errorf("includeIds = %v, want nil", query.IncludeIDs)
	}
}
