package console

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/arthur-debert/prettiprint/pkg/render"
	"github.com/arthur-debert/prettiprint/pkg/style"
)

// DictionaryOptions tunes Dictionary rendering. Dictionaries expand to
// the full terminal width unless Shrink is set.
type DictionaryOptions struct {
	Title  string
	Shrink bool
}

// Dictionary renders a key→value mapping as an aligned listing inside a
// panel. Keys are sorted for stable output.
func (c *Console) Dictionary(data map[string]interface{}, opts DictionaryOptions) {
	if !c.allowed(CategoryMessage, "") {
		return
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([][2]string, len(keys))
	for i, k := range keys {
		items[i] = [2]string{k, formatValue(data[k])}
	}

	c.renderer.Dictionary(render.DictSpec{
		Items:       items,
		Title:       opts.Title,
		KeyStyle:    c.resolver.Resolve("key", ""),
		ValueStyle:  c.resolver.Resolve("value", ""),
		BorderStyle: c.resolver.Resolve("panel", ""),
		Box:         style.ResolveBox(""),
		Expand:      !opts.Shrink,
	})
}

// formatValue renders a dictionary value, prefixing collections with
// their kind so nested data reads sensibly on one line.
func formatValue(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return fmt.Sprintf("%s %v", reflect.TypeOf(v).Kind(), v)
	default:
		return fmt.Sprint(v)
	}
}

// Tree renders an arbitrarily nested structure (maps, slices, scalars) as
// a tree. A zero title defaults to "Structure".
func (c *Console) Tree(obj interface{}, title string) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	if title == "" {
		title = "Structure"
	}

	root := &render.TreeNode{Label: title, Style: c.resolver.Resolve("info", "")}
	c.addToTree(root, obj, "")
	c.renderer.Tree(root)
}

func (c *Console) addToTree(node *render.TreeNode, obj interface{}, name string) {
	if obj == nil {
		node.Add(leafLabel(name, "<nil>"), "")
		return
	}

	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Map:
		branch := node
		if name != "" {
			branch = node.Add(name, "bold")
		}
		keys := make([]string, 0, v.Len())
		byKey := make(map[string]reflect.Value, v.Len())
		for _, k := range v.MapKeys() {
			ks := fmt.Sprint(k.Interface())
			keys = append(keys, ks)
			byKey[ks] = v.MapIndex(k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.addToTree(branch, byKey[k].Interface(), k)
		}

	case reflect.Slice, reflect.Array:
		label := name
		if label == "" {
			label = fmt.Sprintf("%s (%d)", v.Kind(), v.Len())
		}
		branch := node.Add(label, "bold")
		for i := 0; i < v.Len(); i++ {
			c.addToTree(branch, v.Index(i).Interface(), fmt.Sprint(i))
		}

	default:
		node.Add(leafLabel(name, fmt.Sprint(obj)), "")
	}
}

func leafLabel(name, value string) string {
	if name == "" {
		return value
	}
	return name + ": " + value
}
