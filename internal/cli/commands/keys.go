package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/keymap"
)

// keyInfo is the JSON form of a binding.
type keyInfo struct {
	Key         string `json:"key"`
	Action      string `json:"action"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// KeysCommand lists the keyboard keys and control names
func KeysCommand(args []string) {
	if err := runKeys(os.Stdout); err != nil {
		fail(err)
	}
}

func runKeys(w io.Writer) error {
	if *cli.Current().Json {
		return writeJSON(w, map[string][]keyInfo{
			"keys":     keyInfos(keymap.Keys()),
			"controls": keyInfos(keymap.Controls()),
		})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Keys:")
	for _, b := range keymap.Keys() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", b.Key, b.Action.Label(), b.Action.Description)
	}
	fmt.Fprintln(tw, "\nControls:")
	for _, b := range keymap.Controls() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", b.Key, b.Action.Label(), b.Action.Description)
	}
	return tw.Flush()
}

func keyInfos(bindings []keymap.Binding) []keyInfo {
	infos := make([]keyInfo, 0, len(bindings))
	for _, b := range bindings {
		infos = append(infos, keyInfo{
			Key:         b.Key,
			Action:      b.Action.Name,
			Kind:        b.Action.Kind.String(),
			Description: b.Action.Description,
		})
	}
	return infos
}
