package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes Markdown documentation for the command tree. Hidden,
// it's for regenerating the docs site, not for users
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Generate Markdown docs for every command",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}

		if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
			fmt.Println(err.Error())
		}
	},
}

// set flags
func init() {
	rootCmd.AddCommand(docsCmd)
}

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// docMeta is for describing the position/info for a command doc page
type docMeta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// docMetaMap maps the base Markdown file name to its build meta
var docMetaMap = map[string]docMeta{
	"helix": {
		root,
		"helix",
		0,
		"",
		"",
	},
	"helix_annotate": {
		child,
		"annotate",
		0,
		"helix",
		"",
	},
	"helix_find": {
		childParent,
		"find",
		1,
		"helix",
		"",
	},
	"helix_find_component": {
		grandchild,
		"component",
		0,
		"find",
		"helix",
	},
	"helix_find_pattern": {
		grandchild,
		"pattern",
		1,
		"find",
		"helix",
	},
	"helix_set": {
		childParent,
		"set",
		2,
		"helix",
		"",
	},
	"helix_set_component": {
		grandchild,
		"component",
		0,
		"set",
		"helix",
	},
	"helix_delete": {
		childParent,
		"delete",
		3,
		"helix",
		"",
	},
	"helix_delete_component": {
		grandchild,
		"component",
		0,
		"delete",
		"helix",
	},
	"helix_orfs": {
		child,
		"orfs",
		4,
		"helix",
		"",
	},
	"helix_seq": {
		child,
		"seq",
		5,
		"helix",
		"",
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := docMetaMap[base]

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, m.title, m.parent, m.grandParent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "helix" {
		return "/"
	}
	return base
}
