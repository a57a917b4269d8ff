package nlrules

import "github.com/goterm/goterm/internal/core/domain/nlrule"

// defaultRules is the built-in translation table. Order matters: the
// first matching rule wins, so the more specific phrasings come first.
// Capture groups deliberately admit only word, dot, slash, and dash
// characters; fragments are substituted into an argv template and are
// never shell-interpreted.
var defaultRules = []nlrule.Rule{
	{
		Name:     "create-file",
		Pattern:  `create (?:a |the )?file (?:called|named) (?P<name>[\w./-]+)`,
		Template: "touch ${name}",
	},
	{
		Name:     "create-folder-and-move",
		Pattern:  `create (?:a |the )?(?:folder|directory) (?:called|named) (?P<name>[\w.-]+).* move (?P<file>[\w./-]+) into`,
		Template: "mkdir ${name} && mv ${file} ${name}",
	},
	{
		Name:     "create-folder",
		Pattern:  `create (?:a |the )?(?:folder|directory) (?:called|named) (?P<name>[\w.-]+)`,
		Template: "mkdir ${name}",
	},
	{
		Name:     "move-file",
		Pattern:  `move (?P<src>[\w./-]+) (?:to|into) (?P<dst>[\w./-]+)`,
		Template: "mv ${src} ${dst}",
	},
	{
		Name:     "delete-file",
		Pattern:  `(?:delete|remove) (?:the )?(?:file )?(?P<name>[\w./-]+)`,
		Template: "rm ${name}",
	},
	{
		Name:     "list-files-in",
		Pattern:  `(?:show|list)(?: me)?(?: the)? files in (?P<dir>[\w./~-]+)`,
		Template: "ls ${dir}",
	},
	{
		Name:     "list-files",
		Pattern:  `(?:show|list)(?: me)?(?: the)? files`,
		Template: "ls",
	},
	{
		Name:     "show-file",
		Pattern:  `(?:show|print|display) (?:me )?(?:the )?(?:contents? of )?(?P<name>[\w.-]+\.\w+)`,
		Template: "cat ${name}",
	},
	{
		Name:     "where-am-i",
		Pattern:  `where am i|current (?:directory|folder)`,
		Template: "pwd",
	},
}
