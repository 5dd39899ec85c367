package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFile_ReactDetection(t *testing.T) {
	cases := []struct {
		name   string
		source string
		match  bool
	}{
		{"exported function", "export function Button() { return null }", true},
		{"default export", "export default function Button() {}", true},
		{"exported const", "export const Card = () => <div/>", true},
		{"exported class", "export class Modal extends React.Component {}", true},
		{"bare function", "function helper() {}\nmodule.exports = helper", true},
		{"no component", "// just a comment\nconst x = 1", false},
		{"plain text", "hello world", false},
	}

	for _, tc := range cases {
		comp := ExtractFile("/src/button.tsx", []byte(tc.source), FrameworkReact)
		if tc.match {
			require.NotNil(t, comp, tc.name)
		} else {
			assert.Nil(t, comp, tc.name)
		}
	}
}

func TestExtractFile_NameFromFileBase(t *testing.T) {
	comp := ExtractFile("/src/ui/DatePicker.tsx", []byte("export function DatePicker() {}"), FrameworkReact)
	require.NotNil(t, comp)
	assert.Equal(t, "DatePicker", comp.Name)
	assert.Equal(t, "/src/ui/DatePicker.tsx", comp.Path)
	assert.Equal(t, FrameworkReact, comp.Framework)
}

func TestExtractFile_AngularCompoundExtension(t *testing.T) {
	comp := ExtractFile("/src/app/nav.component.ts", []byte("@Component({selector: 'nav'})\nexport class NavComponent {}"), FrameworkAngular)
	require.NotNil(t, comp)
	assert.Equal(t, "nav", comp.Name, "compound extension stripped whole")
}

func TestExtractFile_VueDetection(t *testing.T) {
	assert.NotNil(t, ExtractFile("/src/Card.vue", []byte("<template>\n<div/>\n</template>"), FrameworkVue))
	assert.NotNil(t, ExtractFile("/src/Card.js", []byte("export default {\n name: 'Card' }"), FrameworkVue))
	assert.Nil(t, ExtractFile("/src/util.js", []byte("export const helper = 1"), FrameworkVue))
}

func TestExtractFile_AngularDetection(t *testing.T) {
	assert.NotNil(t, ExtractFile("/src/x.ts", []byte("@Component({})\nclass X {}"), FrameworkAngular))
	assert.Nil(t, ExtractFile("/src/x.ts", []byte("@Injectable()\nclass X {}"), FrameworkAngular))
}

func TestExtractFile_SvelteDetection(t *testing.T) {
	assert.NotNil(t, ExtractFile("/src/Nav.svelte", []byte("<script>let x = 1</script>"), FrameworkSvelte))
	assert.NotNil(t, ExtractFile("/src/Nav.svelte", []byte("<style>.a{}</style>"), FrameworkSvelte))
	assert.NotNil(t, ExtractFile("/src/Nav.svelte", []byte("<div>hi</div>"), FrameworkSvelte))
	assert.Nil(t, ExtractFile("/src/Nav.svelte", []byte("plain text only"), FrameworkSvelte))
}

func TestExtractFile_VanillaDetection(t *testing.T) {
	assert.NotNil(t, ExtractFile("/src/widget.js", []byte("class Widget {}"), FrameworkVanilla))
	assert.NotNil(t, ExtractFile("/src/widget.js", []byte("function widget() {}"), FrameworkVanilla))
	assert.Nil(t, ExtractFile("/src/data.js", []byte("const data = [1, 2]"), FrameworkVanilla))
}

func TestExtractFile_SizeBytes(t *testing.T) {
	src := "export function Button() {}"
	comp := ExtractFile("/src/button.tsx", []byte(src), FrameworkReact)
	require.NotNil(t, comp)
	assert.Equal(t, len(src), comp.SizeBytes)
}

func TestCollectExports_OrderAndDuplicates(t *testing.T) {
	src := `
export const Button = () => null
export function ButtonGroup() {}
export const Button = () => null
export default class ButtonMenu {}
`
	exports := collectExports(src)
	// Duplicates kept, source order preserved.
	assert.Equal(t, []string{"Button", "ButtonGroup", "Button", "ButtonMenu"}, exports)
}

func TestCollectExports_NoneFound(t *testing.T) {
	assert.Nil(t, collectExports("const x = 1"))
}
