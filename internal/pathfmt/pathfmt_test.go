package pathfmt

import "testing"

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cwd     string
		home    string
		shorten bool
		want    string
	}{
		{
			name: "home itself",
			cwd:  "/home/user", home: "/home/user",
			want: "~",
		},
		{
			name: "inside home",
			cwd:  "/home/user/dev/precmd", home: "/home/user",
			want: "~/dev/precmd",
		},
		{
			name: "outside home",
			cwd:  "/usr/local/share", home: "/home/user",
			want: "/usr/local/share",
		},
		{
			name: "sibling of home is not collapsed",
			cwd:  "/home/username/dev", home: "/home/user",
			want: "/home/username/dev",
		},
		{
			name: "no home known",
			cwd:  "/srv/app", home: "",
			want: "/srv/app",
		},
		{
			name: "home with trailing slash",
			cwd:  "/home/user/dev", home: "/home/user/",
			want: "~/dev",
		},
		{
			name: "shortened inside home",
			cwd:  "/home/user/dev/tools/precmd", home: "/home/user",
			shorten: true,
			want:    "~/d/t/precmd",
		},
		{
			name: "shortened absolute path",
			cwd:  "/usr/local/share", home: "/home/user",
			shorten: true,
			want:    "/u/l/share",
		},
		{
			name: "shortened keeps hidden dir prefix",
			cwd:  "/home/user/.config/fish", home: "/home/user",
			shorten: true,
			want:    "~/.c/fish",
		},
		{
			name: "shortening home alone is a no-op",
			cwd:  "/home/user", home: "/home/user",
			shorten: true,
			want:    "~",
		},
		{
			name: "shortening root is a no-op",
			cwd:  "/", home: "/home/user",
			shorten: true,
			want:    "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Display(tt.cwd, tt.home, tt.shorten)
			if got != tt.want {
				t.Errorf("Display(%q, %q, %v) = %q, want %q", tt.cwd, tt.home, tt.shorten, got, tt.want)
			}
		})
	}
}
