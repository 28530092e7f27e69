package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "mode")
	Short     string   // short flag without "-" (e.g., "q")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
}

// modeValues lists the accepted --mode values for completion.
var modeValues = []string{"count", "segmented_count", "sieve", "segmented_sieve"}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Upper bound as a decimal string", ValueName: "number"},
	{Long: "mode", Help: "Generation mode", Values: modeValues, ValueName: "mode"},
	{Long: "all", Help: "Run every mode and cross-check results"},
	{Long: "segment-width", Help: "Candidates per sieve window", Values: []string{"65536", "262144", "1048576", "2097152"}, ValueName: "width"},
	{Long: "workers", Help: "Sieving goroutine count", ValueName: "count"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"1m", "5m", "10m", "30m", "1h"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Prometheus metrics listen address", ValueName: "address"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "interactive", Short: "i", Help: "Start interactive mode"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	fmt.Fprintf(out, "# bash completion for primegen\n")
	fmt.Fprintf(out, "_primegen() {\n")
	fmt.Fprintf(out, "    local cur prev\n")
	fmt.Fprintf(out, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(out, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	fmt.Fprintf(out, "    case \"${prev}\" in\n")
	for _, f := range flagRegistry {
		if f.Long == "" || (len(f.Values) == 0 && !f.IsFile) {
			continue
		}
		fmt.Fprintf(out, "        --%s)\n", f.Long)
		if f.IsFile {
			fmt.Fprintf(out, "            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		} else {
			fmt.Fprintf(out, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
		}
		fmt.Fprintf(out, "            return 0\n            ;;\n")
	}
	fmt.Fprintf(out, "    esac\n\n")
	fmt.Fprintf(out, "    COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(opts, " "))
	fmt.Fprintf(out, "    return 0\n")
	fmt.Fprintf(out, "}\n")
	fmt.Fprintf(out, "complete -F _primegen primegen\n")
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer) error {
	fmt.Fprintf(out, "#compdef primegen\n\n")
	fmt.Fprintf(out, "_primegen() {\n")
	fmt.Fprintf(out, "    _arguments \\\n")
	for _, f := range flagRegistry {
		name := "--" + f.Long
		if f.Long == "" {
			name = "-" + f.Short
		}
		spec := fmt.Sprintf("        '%s[%s]", name, f.Help)
		switch {
		case f.IsFile:
			spec += fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			spec += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			spec += fmt.Sprintf(":%s:", f.ValueName)
		}
		spec += "' \\\n"
		fmt.Fprint(out, spec)
	}
	fmt.Fprintf(out, "        && return 0\n")
	fmt.Fprintf(out, "}\n\n")
	fmt.Fprintf(out, "_primegen \"$@\"\n")
	return nil
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer) error {
	fmt.Fprintf(out, "# fish completion for primegen\n")
	for _, f := range flagRegistry {
		line := "complete -c primegen"
		if f.Long != "" {
			line += " -l " + f.Long
		}
		if f.Short != "" {
			line += " -s " + f.Short
		}
		line += fmt.Sprintf(" -d '%s'", f.Help)
		if len(f.Values) > 0 {
			line += fmt.Sprintf(" -xa '%s'", strings.Join(f.Values, " "))
		} else if f.IsFile {
			line += " -r"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
