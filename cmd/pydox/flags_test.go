package main

// Notes:
// - parseFlags: we test short/long forms, boolean flags, value flags, and
//   positional arguments.
// - We don't test pflag.Parse() internals (library responsibility).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - CLI flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantConfig     string
		wantOutput     string
		wantManifest   string
		wantModule     string
		wantGithubUser string
		wantStyle      string
		wantStyleDir   string
		wantTimeout    string
		wantQuiet      bool
		wantVerbose    bool
		wantWithCSS    bool
		wantWithReadme bool
		wantWithPDF    bool
		wantVersion    bool
		wantPositional []string
		wantErr        bool
	}{
		{
			name:           "no args",
			args:           []string{},
			wantPositional: []string{},
		},
		{
			name:           "project dir positional",
			args:           []string{"./myproject"},
			wantPositional: []string{"./myproject"},
		},
		{
			name:       "config long flag",
			args:       []string{"--config", "work"},
			wantConfig: "work",
		},
		{
			name:       "config short flag",
			args:       []string{"-c", "work"},
			wantConfig: "work",
		},
		{
			name:       "output short flag",
			args:       []string{"-o", "site"},
			wantOutput: "site",
		},
		{
			name:         "tomlfile flag",
			args:         []string{"--tomlfile", "sub/pyproject.toml"},
			wantManifest: "sub/pyproject.toml",
		},
		{
			name:       "module flag",
			args:       []string{"--module", "qsim"},
			wantModule: "qsim",
		},
		{
			name:           "github user flag",
			args:           []string{"--github-user", "octocat"},
			wantGithubUser: "octocat",
		},
		{
			name:      "style flag",
			args:      []string{"--style", "dark"},
			wantStyle: "dark",
		},
		{
			name:         "style dir flag",
			args:         []string{"--style-dir", "/opt/styles"},
			wantStyleDir: "/opt/styles",
		},
		{
			name:        "timeout short flag",
			args:        []string{"-t", "2m"},
			wantTimeout: "2m",
		},
		{
			name:        "with flags",
			args:        []string{"--with-css", "--with-readme", "--with-pdf"},
			wantWithCSS: true, wantWithReadme: true, wantWithPDF: true,
		},
		{
			name:      "quiet short flag",
			args:      []string{"-q"},
			wantQuiet: true,
		},
		{
			name:        "verbose short flag",
			args:        []string{"-v"},
			wantVerbose: true,
		},
		{
			name:        "version flag",
			args:        []string{"--version"},
			wantVersion: true,
		},
		{
			name:           "flags and positional mixed",
			args:           []string{"-q", "./proj", "--style", "dark"},
			wantQuiet:      true,
			wantStyle:      "dark",
			wantPositional: []string{"./proj"},
		},
		{
			name:    "unknown flag",
			args:    []string{"--no-such-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if flags.common.config != tt.wantConfig {
				t.Errorf("config = %q, want %q", flags.common.config, tt.wantConfig)
			}
			if flags.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.project.manifest != tt.wantManifest {
				t.Errorf("manifest = %q, want %q", flags.project.manifest, tt.wantManifest)
			}
			if flags.project.module != tt.wantModule {
				t.Errorf("module = %q, want %q", flags.project.module, tt.wantModule)
			}
			if flags.project.githubUser != tt.wantGithubUser {
				t.Errorf("githubUser = %q, want %q", flags.project.githubUser, tt.wantGithubUser)
			}
			if flags.render.style != tt.wantStyle {
				t.Errorf("style = %q, want %q", flags.render.style, tt.wantStyle)
			}
			if flags.render.styleDir != tt.wantStyleDir {
				t.Errorf("styleDir = %q, want %q", flags.render.styleDir, tt.wantStyleDir)
			}
			if flags.timeout != tt.wantTimeout {
				t.Errorf("timeout = %q, want %q", flags.timeout, tt.wantTimeout)
			}
			if flags.common.quiet != tt.wantQuiet {
				t.Errorf("quiet = %v, want %v", flags.common.quiet, tt.wantQuiet)
			}
			if flags.common.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", flags.common.verbose, tt.wantVerbose)
			}
			if flags.render.withCSS != tt.wantWithCSS {
				t.Errorf("withCSS = %v, want %v", flags.render.withCSS, tt.wantWithCSS)
			}
			if flags.render.withReadme != tt.wantWithReadme {
				t.Errorf("withReadme = %v, want %v", flags.render.withReadme, tt.wantWithReadme)
			}
			if flags.render.withPDF != tt.wantWithPDF {
				t.Errorf("withPDF = %v, want %v", flags.render.withPDF, tt.wantWithPDF)
			}
			if flags.version != tt.wantVersion {
				t.Errorf("version = %v, want %v", flags.version, tt.wantVersion)
			}

			if len(positional) != len(tt.wantPositional) {
				t.Fatalf("positional = %v, want %v", positional, tt.wantPositional)
			}
			for i := range positional {
				if positional[i] != tt.wantPositional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.wantPositional[i])
				}
			}
		})
	}
}
