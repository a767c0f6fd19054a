package scaffgen

const (
	MsgRootShort = "A template-driven source generator and file patcher"

	MsgRootLong = `scaffgen renders a template document and executes its directives:
writing new files and surgically patching existing ones through
regex-addressed injections. Re-running a generation is safe when templates
use skip_exists, skip_glob and skip_if guards.`

	MsgGenerateShort = "Render a template document and apply its directives"

	MsgGenerateLong = `Render the given template document against the supplied variables, then
process each frontmatter/body pair in order: write the body to its target
and apply the directive's injections to existing files.

Use "-" as the template file to read the document from stdin.`

	MsgGenerateExample = `  # Generate from a template with a single variable
  scaffgen generate controller.t --var name=post

  # Variables from a file, targets resolved against ./app
  scaffgen generate controller.t --vars vars.yaml --dir ./app

  # Read the document from stdin
  cat controller.t | scaffgen generate - --var name=post`
)
