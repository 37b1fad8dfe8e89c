package pathmerge

import (
	"testing"

	"github.com/arthur-debert/omni/pkg/userconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name         string
		existing     Contribution
		contribution Contribution
		want         Contribution
	}{
		{
			name:         "prepend of a present path keeps order",
			existing:     Contribution{Prepend: []string{"/a", "/b"}},
			contribution: Contribution{Prepend: []string{"/b"}},
			want:         Contribution{Prepend: []string{"/a", "/b"}},
		},
		{
			name:         "prepend of a new path goes first",
			existing:     Contribution{Prepend: []string{"/a", "/b"}},
			contribution: Contribution{Prepend: []string{"/c"}},
			want:         Contribution{Prepend: []string{"/c", "/a", "/b"}},
		},
		{
			name:         "several prepends are unshifted in turn",
			existing:     Contribution{Prepend: []string{"/a"}},
			contribution: Contribution{Prepend: []string{"/x", "/y"}},
			want:         Contribution{Prepend: []string{"/y", "/x", "/a"}},
		},
		{
			name:         "append into empty",
			contribution: Contribution{Append: []string{"/x"}},
			want:         Contribution{Append: []string{"/x"}},
		},
		{
			name:         "append of a new path goes last",
			existing:     Contribution{Append: []string{"/a"}},
			contribution: Contribution{Append: []string{"/b", "/a"}},
			want:         Contribution{Append: []string{"/a", "/b"}},
		},
		{
			name:         "existing duplicates collapse to first occurrence",
			existing:     Contribution{Append: []string{"/a", "/b", "/a"}},
			contribution: Contribution{Append: []string{"/c"}},
			want:         Contribution{Append: []string{"/a", "/b", "/c"}},
		},
		{
			name:         "repeated contributed path is added once",
			contribution: Contribution{Append: []string{"/x", "/x"}, Prepend: []string{"/y", "/y"}},
			want:         Contribution{Append: []string{"/x"}, Prepend: []string{"/y"}},
		},
		{
			name:         "keys are independent",
			existing:     Contribution{Append: []string{"/a"}},
			contribution: Contribution{Prepend: []string{"/a"}},
			want:         Contribution{Append: []string{"/a"}, Prepend: []string{"/a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.contribution)
			assert.Equal(t, tt.want.ToMap(), got.ToMap())
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	contribution := Contribution{Append: []string{"/x", "/y"}, Prepend: []string{"/p", "/q"}}
	once := Merge(Contribution{Append: []string{"/a"}}, contribution)
	twice := Merge(once, contribution)

	assert.Equal(t, once, twice)
	assert.True(t, Equal(twice, once.ToMap()))
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	existing := Contribution{Prepend: []string{"/a", "/b"}}
	Merge(existing, Contribution{Prepend: []string{"/c"}})
	assert.Equal(t, []string{"/a", "/b"}, existing.Prepend)
}

func TestToMap_DropsEmptyLists(t *testing.T) {
	assert.Equal(t, map[string]interface{}{}, Contribution{}.ToMap())
	assert.Equal(t,
		map[string]interface{}{"prepend": []interface{}{"/p"}},
		Contribution{Append: []string{}, Prepend: []string{"/p"}}.ToMap())
}

func TestFromValue(t *testing.T) {
	c, err := FromValue(nil)
	require.NoError(t, err)
	assert.True(t, c.Empty())

	c, err = FromValue(map[string]interface{}{
		"append":  []interface{}{"/a", "/b"},
		"prepend": "/p",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, c.Append)
	assert.Equal(t, []string{"/p"}, c.Prepend)

	_, err = FromValue([]interface{}{"/a"})
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name   string
		merged Contribution
		raw    interface{}
		want   bool
	}{
		{name: "empty merge equals missing section", merged: Contribution{}, raw: nil, want: true},
		{name: "empty merge equals empty section", merged: Contribution{}, raw: map[string]interface{}{}, want: true},
		{
			name:   "same lists",
			merged: Contribution{Append: []string{"/a"}},
			raw:    map[string]interface{}{"append": []interface{}{"/a"}},
			want:   true,
		},
		{
			name:   "string slices compare like decoded lists",
			merged: Contribution{Append: []string{"/a"}},
			raw:    map[interface{}]interface{}{"append": []string{"/a"}},
			want:   true,
		},
		{
			name:   "named map type compares by content",
			merged: Contribution{Append: []string{"/a"}, Prepend: []string{"/p"}},
			raw: userconfig.Document{
				"append":  []interface{}{"/a"},
				"prepend": []interface{}{"/p"},
			},
			want: true,
		},
		{
			name:   "different order",
			merged: Contribution{Append: []string{"/a", "/b"}},
			raw:    map[string]interface{}{"append": []interface{}{"/b", "/a"}},
			want:   false,
		},
		{
			name:   "stored empty list is rewritten",
			merged: Contribution{Append: []string{"/a"}},
			raw:    map[string]interface{}{"append": []interface{}{"/a"}, "prepend": []interface{}{}},
			want:   false,
		},
		{
			name:   "new path",
			merged: Contribution{Append: []string{"/x"}},
			raw:    nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.merged, tt.raw))
		})
	}
}
