package naming

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"widget", "widget"},
		{"My Widget", "my_widget"},
		{"My Widget\n", "my_widget"},
		{"My Widget\r\n", "my_widget"},
		{"Group/Big Button", "group/big_button"},
		{"already_snake", "already_snake"},
		{"two  spaces", "two__spaces"},
		{"ΟΔΟΣ", "οδος"},
		{"İstanbul", "i̇stanbul"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"my_widget", "my_widget"},
		{"group/my_widget", "my_widget"},
		{"a/b/c", "c"},
		{"trailing/", ""},
	}

	for _, tt := range tests {
		got := Stem(tt.raw)
		if got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestTagName(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"widget", "widget"},
		{"my_widget", "my-widget"},
		{"lobby_room_selector", "lobby-room-selector"},
		{"_leading", "-leading"},
	}

	for _, tt := range tests {
		got := TagName(tt.stem)
		if got != tt.want {
			t.Errorf("TagName(%q) = %q, want %q", tt.stem, got, tt.want)
		}
		if strings.ContainsAny(got, "_ ") {
			t.Errorf("TagName(%q) = %q contains an underscore or space", tt.stem, got)
		}
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"widget", "Widget"},
		{"my_widget", "MyWidget"},
		{"lobby_room_selector", "LobbyRoomSelector"},
		{"double__underscore", "DoubleUnderscore"},
		{"_leading", "Leading"},
		{"canvas_2d", "Canvas2d"},
		{"", ""},
	}

	for _, tt := range tests {
		got := TypeName(tt.stem)
		if got != tt.want {
			t.Errorf("TypeName(%q) = %q, want %q", tt.stem, got, tt.want)
		}
		if strings.ContainsAny(got, "_ ") {
			t.Errorf("TypeName(%q) = %q contains an underscore or space", tt.stem, got)
		}
	}
}

func TestImportPrefix(t *testing.T) {
	tests := []struct {
		raw      string
		segments int
	}{
		{"widget", 1},
		{"group/my_widget", 2},
		{"a/b/c/d", 4},
	}

	for _, tt := range tests {
		got := ImportPrefix(tt.raw)
		want := strings.Repeat("../", tt.segments)
		if got != want {
			t.Errorf("ImportPrefix(%q) = %q, want %q", tt.raw, got, want)
		}
	}
}

func TestDerive(t *testing.T) {
	t.Run("flat name", func(t *testing.T) {
		n := Derive("My Widget")
		want := Names{
			Raw:          "my_widget",
			Stem:         "my_widget",
			Tag:          "my-widget",
			Type:         "MyWidget",
			ImportPrefix: "../",
		}
		if n != want {
			t.Errorf("Derive() = %+v, want %+v", n, want)
		}
	})

	t.Run("nested name", func(t *testing.T) {
		n := Derive("group/my_widget")
		want := Names{
			Raw:          "group/my_widget",
			Stem:         "my_widget",
			Tag:          "my-widget",
			Type:         "MyWidget",
			ImportPrefix: "../../",
		}
		if n != want {
			t.Errorf("Derive() = %+v, want %+v", n, want)
		}
	})

	t.Run("stem equals raw without separators", func(t *testing.T) {
		for _, input := range []string{"widget", "Big Red Button", "x y z"} {
			n := Derive(input)
			if n.Stem != n.Raw {
				t.Errorf("Derive(%q): Stem %q != Raw %q", input, n.Stem, n.Raw)
			}
		}
	})
}
