// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	ConfigLoadFailedId
	ManifestParseErrorId
	ScriptNotFoundId
	DispatchFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown in the "See also" section
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter found!

We checked the project virtualenv and your PATH but couldn't find a usable
Python interpreter.

## Locations checked (in order of precedence):
1. ` + "`.venv/bin/python`" + ` next to the project root
2. ` + "`python`" + ` on your PATH
3. ` + "`python3`" + ` on your PATH

## Things you can try:
- Create a project virtualenv:
~~~
$ python3 -m venv .venv
~~~

- Install Python:
  - Linux: ` + "`sudo apt install python3`" + ` or ` + "`sudo dnf install python3`" + `
  - macOS: ` + "`brew install python`" + `
  - Windows: https://www.python.org/downloads/

- Inspect what venvrun sees:
~~~
$ venvrun check
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the venvrun configuration file.

## Configuration file locations:
- Linux: ~/.config/venvrun/config.cue
- macOS: ~/Library/Application Support/venvrun/config.cue
- Windows: %APPDATA%\venvrun\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ venvrun config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/venvrun/config.cue
~~~

## Example configuration:
~~~cue
venv_dir: ".venv"
interpreters: ["python", "python3"]

ui: {
  verbose: false
}
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse venvrun.toml!

Your project manifest contains syntax errors or invalid configuration.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- Unknown field names
- Invalid values for known fields

## Example of a valid manifest:
~~~toml
script = "scripts/main.py"
venv_dir = ".venv"
interpreters = ["python", "python3"]
~~~`,
	}

	scriptNotFoundIssue = &Issue{
		id: ScriptNotFoundId,
		mdMsg: `
# Entry script not found!

The script venvrun is configured to launch does not exist in the project.

## Things you can try:
- Check the ` + "`script`" + ` field in venvrun.toml
- Check the ` + "`script`" + ` key in your config file
- Verify the file exists relative to the project root`,
	}

	dispatchFailedIssue = &Issue{
		id: DispatchFailedId,
		mdMsg: `
# Failed to hand over to the interpreter!

An interpreter was found but the process handoff failed.

## Common causes:
- The interpreter file was removed between resolution and dispatch
- The interpreter is not executable for your user
- The interpreter is built for a different architecture

## Things you can try:
- Re-run with verbose mode for more details:
~~~
$ venvrun --verbose run
~~~

- Recreate the virtualenv:
~~~
$ rm -rf .venv && python3 -m venv .venv
~~~`,
	}

	issues = map[Id]*Issue{
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		manifestParseErrorIssue.Id():  manifestParseErrorIssue,
		scriptNotFoundIssue.Id():      scriptNotFoundIssue,
		dispatchFailedIssue.Id():      dispatchFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
