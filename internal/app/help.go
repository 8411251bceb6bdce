package app

const longHelp = `Compose a GitHub pull request in your editor and submit it with gh.

The editor is opened on a buffer containing the repository's pull request
template (if any) and the list of commits that will be proposed. The first
line you write is the title and the rest is the description; everything
below the scissors line is ignored.

If gh fails, or the title is left empty, the message is kept and the next
run starts from it.

Any argument not listed below is passed to "gh pr create" unchanged, for
example --draft, --reviewer or --base.

Editor: $GIT_PR_EDITOR, the "editor" config key, then the editor git would
use for commit messages.

Configuration is read from $GIT_PR_CONFIG or <user config dir>/git-pr/config.yaml.`
