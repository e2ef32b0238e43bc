package leetcode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"leethub-sync/internal/domain/model"
	apperrors "leethub-sync/internal/errors"
)

const twoSumResponse = `{"data":{"question":{
	"questionFrontendId":"1",
	"title":"Two Sum",
	"titleSlug":"two-sum",
	"difficulty":"Easy",
	"isPaidOnly":false,
	"content":"<p>Given an array of integers <code>nums</code>,</p><ul><li>return indices</li></ul>",
	"topicTags":[{"name":"Array"},{"name":"Hash Table"}]
}}}`

func TestGetProblem(t *testing.T) {
	var gotVars map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		gotVars, _ = body["variables"].(map[string]any)
		_, _ = io.WriteString(w, twoSumResponse)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)
	problem, err := client.GetProblem(context.Background(), "two-sum")
	if err != nil {
		t.Fatalf("GetProblem() error = %v", err)
	}

	if gotVars["titleSlug"] != "two-sum" {
		t.Errorf("titleSlug variable = %v, want two-sum", gotVars["titleSlug"])
	}

	want := &model.Problem{
		ID:         1,
		Title:      "Two Sum",
		Slug:       "two-sum",
		Difficulty: "Easy",
		Link:       "https://leetcode.com/problems/two-sum/",
		Content:    "Given an array of integers nums,\n\nreturn indices",
		Topics:     []string{"Array", "Hash Table"},
	}
	if diff := cmp.Diff(want, problem); diff != "" {
		t.Errorf("GetProblem() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetProblemNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"question":null}}`)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, time.Second, nil).GetProblem(context.Background(), "nope"); err == nil {
		t.Error("GetProblem() error = nil, want not found")
	}
}

func TestGetProblemUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, nil).GetProblem(context.Background(), "two-sum")
	if got := apperrors.CodeOf(err); got != apperrors.ErrCodeUpstream {
		t.Errorf("CodeOf(err) = %q, want %q", got, apperrors.ErrCodeUpstream)
	}
}

func TestHTMLToText(t *testing.T) {
	got := htmlToText("<p>a<br>b</p>")
	if got != "\na\nb\n" {
		t.Errorf("htmlToText() = %q", got)
	}
	if htmlToText("") != "" {
		t.Error("htmlToText(\"\") should be empty")
	}
}
