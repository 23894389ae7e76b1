// saigen generates SAI experimental API headers from a P4 program's
// runtime description and registers them in a checked-out SAI tree.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/marian-pritsak/DASH-1/internal/config"
	"github.com/marian-pritsak/DASH-1/internal/p4info"
	"github.com/marian-pritsak/DASH-1/internal/patch"
	"github.com/marian-pritsak/DASH-1/internal/render"
	"github.com/marian-pritsak/DASH-1/internal/sai"
	"github.com/marian-pritsak/DASH-1/internal/sairepo"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "generate",
		short: "Generate SAI headers from a P4Runtime info file",
		usage: "saigen generate <p4info.json> [<apiname>] [flags]",
		long: `Translate the P4 program's runtime description into SAI API headers.

Writes saiexperimental<apiname>.h into the SAI tree and registers the new
API in saiextensions.h, saitypesextensions.h and saiobject.h. The tree is
cloned fresh unless --dest points at an existing checkout.

Flags:
  --ignore-tables    comma-separated derived table names to skip
  --sai-git-url      SAI repository URL (default ` + sairepo.DefaultURL + `)
  --sai-git-branch   SAI repository branch (default ` + sairepo.DefaultBranch + `)
  --dest             SAI tree location (existing tree is patched in place)
  --print-sai-lib    also dump the assembled model as YAML to stdout

When <apiname> is omitted, saigen prompts for it.
`,
		run: runGenerate,
	},
	{
		name:  "print",
		short: "Assemble the model and dump it as YAML",
		usage: "saigen print <p4info.json> [<apiname>] [flags]",
		long: `Assemble the normalized table model and print it without touching
any SAI tree. Useful for inspecting classification results.

Flags:
  --ignore-tables    comma-separated derived table names to skip
`,
		run: runPrint,
	},
	{
		name:  "fetch",
		short: "Clone the baseline SAI repository",
		usage: "saigen fetch [flags]",
		long: `Clone the SAI repository without generating anything.

Flags:
  --sai-git-url      SAI repository URL (default ` + sairepo.DefaultURL + `)
  --sai-git-branch   SAI repository branch (default ` + sairepo.DefaultBranch + `)
  --dest             clone destination (default ./SAI)
`,
		run: runFetch,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "saigen — P4 to SAI API generator\n\n")
	fmt.Fprintf(w, "Usage:\n  saigen <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'saigen help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "saigen: unknown command %q\n\nRun 'saigen help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'saigen help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	ignore := fs.String("ignore-tables", "", "comma-separated derived table names to skip")
	gitURL := fs.String("sai-git-url", "", "SAI repository URL")
	gitBranch := fs.String("sai-git-branch", "", "SAI repository branch")
	dest := fs.String("dest", "", "SAI tree location")
	printLib := fs.Bool("print-sai-lib", false, "dump the assembled model as YAML")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: saigen generate <p4info.json> [<apiname>] [flags]")
	}
	p4Path := rest[0]

	cfg, err := loadConfig(p4Path, config.Config{
		IgnoreTables: config.SplitTables(*ignore),
		SAIGitURL:    *gitURL,
		SAIGitBranch: *gitBranch,
		Dest:         *dest,
	})
	if err != nil {
		return err
	}
	if len(rest) >= 2 {
		cfg.AppName = rest[1]
	}
	if cfg.AppName == "" {
		name, err := promptFor("API name (e.g. dash)")
		if err != nil {
			return err
		}
		cfg.AppName = name
	}
	if cfg.AppName == "" {
		return fmt.Errorf("an API name is required")
	}

	model, err := assemble(p4Path, cfg)
	if err != nil {
		return err
	}

	if *printLib {
		if err := yaml.NewEncoder(os.Stdout).Encode(model); err != nil {
			return fmt.Errorf("dump model: %w", err)
		}
	}

	// Acquire the baseline tree. An explicitly given --dest may already
	// be checked out; the implicit ./SAI must be fresh.
	tree := cfg.Dest
	patchInPlace := tree != ""
	if tree == "" {
		tree = "./SAI"
	}
	if _, err := os.Stat(tree); err == nil {
		if !patchInPlace {
			return fmt.Errorf("directory %s already exists, remove it to proceed", tree)
		}
		log.Info().Str("dest", tree).Msg("patching existing SAI tree")
	} else {
		log.Info().Str("url", cfg.SAIGitURL).Str("branch", cfg.SAIGitBranch).Msg("cloning SAI repository")
		if err := sairepo.Clone(cfg.SAIGitURL, cfg.SAIGitBranch, tree); err != nil {
			return err
		}
	}
	if commit, err := sairepo.HeadCommit(tree); err == nil {
		log.Info().Str("commit", commit).Msg("SAI baseline")
	}

	return writeArtifacts(model, tree)
}

// loadConfig reads .saigen.yaml next to the P4Info file and overlays the
// flag values, then fills repository defaults.
func loadConfig(p4Path string, flags config.Config) (config.Config, error) {
	fileCfg, err := config.Load(filepath.Dir(p4Path))
	if err != nil {
		return config.Config{}, err
	}
	cfg := fileCfg.Merge(flags)
	if cfg.SAIGitURL == "" {
		cfg.SAIGitURL = sairepo.DefaultURL
	}
	if cfg.SAIGitBranch == "" {
		cfg.SAIGitBranch = sairepo.DefaultBranch
	}
	return cfg, nil
}

// assemble loads the program and runs the translation pipeline.
func assemble(p4Path string, cfg config.Config) (*sai.Model, error) {
	program, err := p4info.Load(p4Path)
	if err != nil {
		return nil, err
	}
	model, err := sai.Generate(program, sai.Config{
		AppName:      cfg.AppName,
		IgnoreTables: cfg.IgnoreTables,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Int("tables", len(model.Tables)).Str("api", model.AppName).Msg("model assembled")
	return model, nil
}

// writeArtifacts renders the experimental header and patches the three
// boilerplate headers inside the SAI tree.
func writeArtifacts(model *sai.Model, tree string) error {
	header, err := render.New(tree).Header(model)
	if err != nil {
		return err
	}
	headerPath := filepath.Join(tree, "experimental", render.HeaderFileName(model.AppName))
	if err := os.WriteFile(headerPath, []byte(header), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", headerPath, err)
	}
	log.Info().Str("path", headerPath).Msg("wrote experimental header")

	edits := []struct {
		path      string
		transform func([]string, *sai.Model) []string
	}{
		{filepath.Join(tree, "experimental", "saiextensions.h"), patch.Extensions},
		{filepath.Join(tree, "experimental", "saitypesextensions.h"), patch.TypeExtensions},
		{filepath.Join(tree, "inc", "saiobject.h"), patch.Object},
	}
	for _, edit := range edits {
		if err := patch.File(edit.path, model, edit.transform); err != nil {
			return err
		}
		log.Info().Str("path", edit.path).Msg("patched")
	}
	return nil
}

// ---------------------------------------------------------------------------
// print
// ---------------------------------------------------------------------------

func runPrint(args []string) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	ignore := fs.String("ignore-tables", "", "comma-separated derived table names to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: saigen print <p4info.json> [<apiname>] [flags]")
	}

	cfg, err := loadConfig(rest[0], config.Config{IgnoreTables: config.SplitTables(*ignore)})
	if err != nil {
		return err
	}
	if len(rest) >= 2 {
		cfg.AppName = rest[1]
	}

	model, err := assemble(rest[0], cfg)
	if err != nil {
		return err
	}
	return yaml.NewEncoder(os.Stdout).Encode(model)
}

// ---------------------------------------------------------------------------
// fetch
// ---------------------------------------------------------------------------

func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	gitURL := fs.String("sai-git-url", sairepo.DefaultURL, "SAI repository URL")
	gitBranch := fs.String("sai-git-branch", sairepo.DefaultBranch, "SAI repository branch")
	dest := fs.String("dest", "./SAI", "clone destination")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log.Info().Str("url", *gitURL).Str("branch", *gitBranch).Msg("cloning SAI repository")
	if err := sairepo.Clone(*gitURL, *gitBranch, *dest); err != nil {
		return err
	}
	commit, err := sairepo.HeadCommit(*dest)
	if err != nil {
		return err
	}
	log.Info().Str("dest", *dest).Str("commit", commit).Msg("cloned")
	return nil
}

// ---------------------------------------------------------------------------
// TUI prompt helper
// ---------------------------------------------------------------------------

// promptModel is a bubbletea model that asks for a single value.
type promptModel struct {
	label string
	input textinput.Model
	done  bool
}

func newPromptModel(label string) promptModel {
	ti := textinput.New()
	ti.Placeholder = label
	ti.CharLimit = 128
	ti.Focus()
	return promptModel{label: label, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", m.label, m.input.View())
}

// promptFor runs the TUI and returns the entered value.
func promptFor(label string) (string, error) {
	p := tea.NewProgram(newPromptModel(label))
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return "", fmt.Errorf("prompt cancelled")
	}
	return final.input.Value(), nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("saigen failed")
	}
}
