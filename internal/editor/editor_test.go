package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/folio/internal/content"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	err       error
	calls     int
	lastInfo  content.PersonalInfo
	lastProj  content.Project
	lastStack []content.TechCategory
	lastLink  content.LinkItem
}

func (f *fakeSaver) PutPersonalInfo(_ context.Context, info content.PersonalInfo) (content.PersonalInfo, error) {
	f.calls++
	f.lastInfo = info
	return info, f.err
}

func (f *fakeSaver) CreateProject(_ context.Context, p content.Project) (content.Project, error) {
	f.calls++
	f.lastProj = p
	p.ID = 100
	return p, f.err
}

func (f *fakeSaver) UpdateProject(_ context.Context, id int64, p content.Project) (content.Project, error) {
	f.calls++
	f.lastProj = p
	p.ID = id
	return p, f.err
}

func (f *fakeSaver) PutTechStack(_ context.Context, categories []content.TechCategory) ([]content.TechCategory, error) {
	f.calls++
	f.lastStack = categories
	return categories, f.err
}

func (f *fakeSaver) CreateLink(_ context.Context, link content.LinkItem) (content.LinkItem, error) {
	f.calls++
	f.lastLink = link
	link.ID = 7
	return link, f.err
}

func (f *fakeSaver) UpdateLink(_ context.Context, id int64, link content.LinkItem) (content.LinkItem, error) {
	f.calls++
	f.lastLink = link
	return link, f.err
}

func (f *fakeSaver) ToggleLink(_ context.Context, id int64) (content.LinkItem, error) {
	f.calls++
	return content.LinkItem{ID: id, Title: "toggled", IsActive: false}, f.err
}

func TestDraftDirtyCommitDiscard(t *testing.T) {
	d := NewDraft(content.DefaultPersonalInfo(), content.PersonalInfo.Clone)
	require.False(t, d.Dirty())

	d.Working().Name = "Ada"
	require.True(t, d.Dirty())

	d.Discard()
	require.False(t, d.Dirty())
	require.Empty(t, d.Working().Name)

	d.Working().Name = "Ada"
	d.Commit(*d.Working())
	require.False(t, d.Dirty())
	require.Equal(t, "Ada", d.Committed().Name)
}

func TestDraftIsolatesWorkingCopy(t *testing.T) {
	info := content.DefaultPersonalInfo()
	info.Navigation = []content.NavItem{{Name: "Home", Href: "/"}}
	d := NewDraft(info, content.PersonalInfo.Clone)

	d.Working().Navigation[0].Name = "Start"
	require.Equal(t, "Home", d.Committed().Navigation[0].Name)
	require.Equal(t, "Home", info.Navigation[0].Name)
}

func TestPersonalInfoEditorLists(t *testing.T) {
	e := NewPersonalInfoEditor(content.DefaultPersonalInfo())
	e.AddNavItem("Home", "/")
	e.AddNavItem("Projects", "/projects")
	e.AddNavItem("Home", "/")
	require.Len(t, e.Working().Navigation, 3, "navigation allows duplicates")

	require.NoError(t, e.UpdateNavItem(1, content.NavItem{Name: "Work", Href: "/projects"}))
	require.NoError(t, e.RemoveNavItem(0))
	require.Equal(t, []content.NavItem{{Name: "Work", Href: "/projects"}, {Name: "Home", Href: "/"}}, e.Working().Navigation)
	require.ErrorIs(t, e.RemoveNavItem(5), ErrIndexOutOfRange)
	require.ErrorIs(t, e.UpdateNavItem(-1, content.NavItem{}), ErrIndexOutOfRange)

	e.AddFooterLink("GitHub", "https://github.com")
	require.NoError(t, e.UpdateFooterLink(0, content.NavItem{Name: "Source", Href: "https://github.com/x"}))
	require.NoError(t, e.RemoveFooterLink(0))
	require.Empty(t, e.Working().Footer.Links)
}

func TestPersonalInfoSaveFailureKeepsWorkingCopy(t *testing.T) {
	e := NewPersonalInfoEditor(content.DefaultPersonalInfo())
	w := e.Working()
	w.Name, w.Title, w.Email = "Ada", "Engineer", "bad-email"

	saver := &fakeSaver{}
	require.ErrorIs(t, e.Save(context.Background(), saver), content.ErrInvalid)
	require.Zero(t, saver.calls, "invalid documents are not submitted")
	require.True(t, e.Dirty())

	w.Email = "ada@example.com"
	saver.err = errors.New("disk full")
	require.Error(t, e.Save(context.Background(), saver))
	require.True(t, e.Dirty())
	require.Equal(t, "Ada", e.Working().Name)

	saver.err = nil
	require.NoError(t, e.Save(context.Background(), saver))
	require.False(t, e.Dirty())
	require.Equal(t, "ada@example.com", e.Committed().Email)
}

func TestProjectEditorTagsDedupe(t *testing.T) {
	e := NewBlankProjectEditor()
	require.True(t, e.AddTag("go"))
	require.False(t, e.AddTag("go"))
	require.False(t, e.AddTag("  go "))
	require.False(t, e.AddTag("   "))
	require.True(t, e.AddTag("gin"))
	require.Equal(t, []string{"go", "gin"}, e.Working().Tags)

	e.RemoveTag("go")
	require.Equal(t, []string{"gin"}, e.Working().Tags)
}

func TestProjectEditorListsAndTechnologies(t *testing.T) {
	e := NewBlankProjectEditor()
	require.True(t, e.AddItem(Features, "Admin"))
	require.True(t, e.AddItem(Features, "Admin"))
	require.False(t, e.AddItem(Challenges, " "))
	require.Len(t, e.Working().Features, 2, "features allow duplicates")
	require.NoError(t, e.UpdateItem(Features, 1, "Public site"))
	require.NoError(t, e.RemoveItem(Features, 0))
	require.Equal(t, []string{"Public site"}, e.Working().Features)
	require.ErrorIs(t, e.RemoveItem(Learnings, 0), ErrIndexOutOfRange)

	added, err := e.AddTechnology(content.TechBackend, "Go")
	require.NoError(t, err)
	require.True(t, added)
	added, err = e.AddTechnology(content.TechBackend, "Go")
	require.NoError(t, err)
	require.False(t, added)
	_, err = e.AddTechnology("database", "Postgres")
	require.ErrorIs(t, err, ErrUnknownTechCategory)
	require.NoError(t, e.RemoveTechnology(content.TechBackend, 0))
	require.Empty(t, e.Working().Technologies.Backend)

	e.AddImage()
	require.Len(t, e.Working().Images, 2)
	require.NoError(t, e.UpdateImage(1, "/uploads/a.png"))
	require.NoError(t, e.RemoveImage(0))
	require.Equal(t, []string{"/uploads/a.png"}, e.Working().Images)
}

func TestProjectEditorSave(t *testing.T) {
	e := NewBlankProjectEditor()
	saver := &fakeSaver{}

	require.ErrorIs(t, e.Save(context.Background(), saver), content.ErrInvalid)
	require.Zero(t, saver.calls)

	w := e.Working()
	w.Title, w.Description = "Folio", "Portfolio"
	e.AddImage()
	require.NoError(t, e.UpdateImage(1, "/uploads/b.png"))

	require.NoError(t, e.Save(context.Background(), saver))
	require.Equal(t, []string{"/uploads/b.png"}, saver.lastProj.Images, "blank gallery slots are dropped")
	require.Equal(t, int64(100), e.Committed().ID)

	e.Working().Title = "Folio 2"
	require.NoError(t, e.Save(context.Background(), saver))
	require.Equal(t, 2, saver.calls)
	require.Equal(t, "Folio 2", e.Committed().Title)
}

func TestTechStackEditor(t *testing.T) {
	e := NewTechStackEditor(nil)
	require.False(t, e.AddCategory(" "))
	require.True(t, e.AddCategory("Languages"))

	added, err := e.AddTechnology(0, "Go", "")
	require.NoError(t, err)
	require.True(t, added)
	added, err = e.AddTechnology(0, "Go", "🐹")
	require.NoError(t, err)
	require.False(t, added)
	_, err = e.AddTechnology(3, "Rust", "")
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	stack := *e.Working()
	require.Equal(t, content.DefaultTechIcon, stack[0].Technologies[0].Icon)

	require.NoError(t, e.UpdateTechnology(0, 0, content.Technology{Name: "Golang", Icon: "🐹"}))
	require.NoError(t, e.RenameCategory(0, "Backend"))
	require.Equal(t, "Backend", (*e.Working())[0].Category)

	saver := &fakeSaver{}
	require.NoError(t, e.Save(context.Background(), saver))
	require.False(t, e.Dirty())

	require.NoError(t, e.RemoveTechnology(0, 0))
	require.NoError(t, e.RemoveCategory(0))
	require.Empty(t, *e.Working())
	require.True(t, e.Dirty())

	require.True(t, e.AddCategory("Tools"))
	require.NoError(t, e.RenameCategory(0, " "))
	calls := saver.calls
	require.ErrorIs(t, e.Save(context.Background(), saver), content.ErrInvalid)
	require.Equal(t, calls, saver.calls)
}

func TestLinkEditorAndBoard(t *testing.T) {
	e := NewBlankLinkEditor()
	saver := &fakeSaver{}
	require.ErrorIs(t, e.Save(context.Background(), saver), content.ErrInvalid)

	w := e.Working()
	w.Title, w.URL, w.Category = "Blog", "https://blog.dev", "Content"
	require.NoError(t, e.Save(context.Background(), saver))
	require.True(t, saver.lastLink.IsActive)
	require.Equal(t, int64(7), e.Committed().ID)

	links := []content.LinkItem{
		{ID: 1, Title: "A", Category: "Work", IsActive: true},
		{ID: 2, Title: "B", Category: "Talks", IsActive: false},
	}
	board := NewLinkBoard(links)
	require.Len(t, board.Active, 1)
	require.Len(t, board.Inactive, 1)
	require.Equal(t, []string{"Work", "Talks", "Personal", "Social", "Content", "Other"}, board.Categories)

	next, err := Toggle(context.Background(), saver, links, 1)
	require.NoError(t, err)
	require.False(t, next[0].IsActive)
	require.True(t, links[0].IsActive, "input slice is not modified")
}
