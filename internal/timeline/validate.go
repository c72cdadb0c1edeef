package timeline

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
)

// Result is the outcome of validating a serialized project document.
// Structural problems are reported as data, never as a Go error: callers
// decide whether a failed validation blocks downstream mixing or export.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xmlNode  `xml:",any"`
}

// Validate re-parses a previously serialized project document and checks
// structural completeness and referential integrity. It is the guard that
// catches a resource table and track layout silently desynchronizing: every
// clip ref in the spine must resolve to a declared resource.
func Validate(path string) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}

	if _, err := os.Stat(path); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("File not found: %s", path))
		return result
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Parse error: %v", err))
		return result
	}

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Parse error: %v", err))
		return result
	}

	if root.XMLName.Local != "fcpxml" {
		result.Errors = append(result.Errors, fmt.Sprintf("Root element is not fcpxml: %s", root.XMLName.Local))
	}
	if version := attrValue(root, "version"); !versionPattern.MatchString(version) {
		result.Errors = append(result.Errors, fmt.Sprintf("Missing or invalid version attribute: %q", version))
	}

	declared := checkResources(&root, &result)
	checkLibraryChain(&root, declared, &result)

	result.Valid = len(result.Errors) == 0
	return result
}

func checkResources(root *xmlNode, result *Result) map[string]struct{} {
	declared := make(map[string]struct{})

	resources := childNode(root, "resources")
	if resources == nil {
		result.Errors = append(result.Errors, "Missing resources section")
		return declared
	}

	formats := childNodes(resources, "format")
	if len(formats) == 0 {
		result.Errors = append(result.Errors, "No format declaration in resources")
	}

	assets := childNodes(resources, "asset")
	if len(assets) == 0 {
		result.Warnings = append(result.Warnings, "No resource declarations in resources")
	}

	for _, node := range resources.Nodes {
		if id := attrValue(node, "id"); id != "" {
			declared[id] = struct{}{}
		}
	}
	return declared
}

// checkLibraryChain walks library → event → project → sequence → spine,
// reporting only the deepest reachable missing element rather than a cascade.
func checkLibraryChain(root *xmlNode, declared map[string]struct{}, result *Result) {
	current := root
	for _, name := range []string{"library", "event", "project", "sequence", "spine"} {
		next := childNode(current, name)
		if next == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Missing %s element", name))
			return
		}
		current = next
	}

	if len(current.Nodes) == 0 {
		result.Warnings = append(result.Warnings, "Spine contains no clips")
		return
	}

	checkClipRefs(current, declared, result)
}

func checkClipRefs(spine *xmlNode, declared map[string]struct{}, result *Result) {
	var walk func(node xmlNode)
	walk = func(node xmlNode) {
		if ref := attrValue(node, "ref"); ref != "" {
			if _, ok := declared[ref]; !ok {
				result.Errors = append(result.Errors, fmt.Sprintf("Clip references undeclared resource: %s", ref))
			}
		}
		for _, child := range node.Nodes {
			walk(child)
		}
	}
	for _, child := range spine.Nodes {
		walk(child)
	}
}

func childNode(node *xmlNode, name string) *xmlNode {
	for i := range node.Nodes {
		if node.Nodes[i].XMLName.Local == name {
			return &node.Nodes[i]
		}
	}
	return nil
}

func childNodes(node *xmlNode, name string) []*xmlNode {
	var out []*xmlNode
	for i := range node.Nodes {
		if node.Nodes[i].XMLName.Local == name {
			out = append(out, &node.Nodes[i])
		}
	}
	return out
}

func attrValue(node xmlNode, name string) string {
	for _, attr := range node.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
