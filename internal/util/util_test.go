// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits", input: "barn", maxWidth: 10, want: "barn"},
		{name: "ascii truncated", input: "pasture rotation", maxWidth: 10, want: "pasture..."},
		{name: "cjk counts double", input: "乳牛", maxWidth: 4, want: "乳牛"},
		{name: "cjk truncated", input: "乳牛の健康", maxWidth: 7, want: "乳牛..."},
		{name: "zero width", input: "barn", maxWidth: 0, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateWidth(tc.input, tc.maxWidth); got != tc.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tc.input, tc.maxWidth, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ok", 5); got != "ok   " {
		t.Errorf("PadRight = %q, want %q", got, "ok   ")
	}
	if got := PadRight("乳牛", 6); got != "乳牛  " {
		t.Errorf("PadRight(乳牛, 6) = %q, want double-width aware padding", got)
	}
}
