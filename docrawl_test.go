package docrawl_test

import (
	"testing"

	"github.com/sennevb/docrawl"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docrawl.Errorf(docrawl.EINVALID, "page %q invalid", "test")

	assert.Equal(t, docrawl.EINVALID, docrawl.ErrorCode(err))
	assert.Equal(t, "page \"test\" invalid", docrawl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docrawl.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docrawl.ErrorMessage(nil))
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	page := &docrawl.Page{URL: "https://x/manual", Title: "Manual"}
	assert.NoError(t, page.Validate())

	page = &docrawl.Page{Title: "Manual"}
	assert.Equal(t, docrawl.EINVALID, docrawl.ErrorCode(page.Validate()))
}

func TestPage_Key_IsShortHashOfURL(t *testing.T) {
	t.Parallel()

	page := &docrawl.Page{URL: "https://x/manual", Title: "Manual"}
	assert.Equal(t, docrawl.ShortHash("https://x/manual"), page.Key())
	assert.Len(t, page.Key(), 16)
}
