package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		want    FileRef
		wantErr bool
	}{
		{
			name: "file form",
			url:  "https://www.figma.com/file/aBc123XyZ/Design-System",
			want: FileRef{FileKey: "aBc123XyZ"},
		},
		{
			name: "design form",
			url:  "https://www.figma.com/design/aBc123XyZ/Design-System",
			want: FileRef{FileKey: "aBc123XyZ"},
		},
		{
			name: "node id normalized",
			url:  "https://www.figma.com/file/aBc123XyZ/DS?node-id=12-34",
			want: FileRef{FileKey: "aBc123XyZ", NodeID: "12:34"},
		},
		{
			name: "bare key",
			url:  "aBc123XyZ",
			want: FileRef{FileKey: "aBc123XyZ"},
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
		{
			name:    "no key segment",
			url:     "https://www.figma.com/community/something",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFileURL(tc.url)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
