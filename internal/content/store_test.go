package content

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return store
}

func samplePersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:         "Ada",
		Title:        "Engineer",
		Description:  "Builds things",
		Email:        "ada@example.com",
		ProfileImage: "/uploads/ada.png",
		SocialLinks:  SocialLinks{GitHub: "https://github.com/ada"},
		Navigation:   []NavItem{{Name: "Projects", Href: "#projects"}},
		Footer:       Footer{Copyright: "© Ada", Links: []NavItem{{Name: "Privacy", Href: "/privacy"}}},
	}
}

func TestStoreMissingFilesReturnEmptyDefaults(t *testing.T) {
	store := newTestStore(t)

	info, err := store.PersonalInfo()
	require.NoError(t, err)
	require.Equal(t, DefaultPersonalInfo(), info)

	projects, err := store.Projects()
	require.NoError(t, err)
	require.Empty(t, projects)
	require.NotNil(t, projects)

	stack, err := store.TechStack()
	require.NoError(t, err)
	require.NotNil(t, stack)

	links, err := store.Links()
	require.NoError(t, err)
	require.NotNil(t, links)
}

func TestStorePersonalInfoRoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := samplePersonalInfo()

	require.NoError(t, store.SavePersonalInfo(want))
	got, err := store.PersonalInfo()
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("personal info mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreCorruptPersonalInfoDegradesToDefault(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(KindPersonalInfo), []byte("{not json"), 0o644))

	info, err := store.PersonalInfo()
	require.Error(t, err)
	require.Equal(t, DefaultPersonalInfo(), info)
}

func TestStoreCorruptProjectsPropagatesError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(KindProjects), []byte("[1,2"), 0o644))

	_, err := store.Projects()
	require.Error(t, err)
}

func TestStoreProjectsFileLayout(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveProjects([]Project{{ID: 7, Title: "A", Description: "d"}}))

	raw, err := os.ReadFile(store.Path(KindProjects))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte("{\n  \"projects\": [")), "unexpected layout: %s", raw)
	require.Contains(t, string(raw), `"tags": []`)

	projects, err := store.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, int64(7), projects[0].ID)
	require.Equal(t, []string{}, projects[0].Technologies.Frontend)
}

func TestStoreWriteLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveLinks([]LinkItem{{ID: 1, Title: "Blog", URL: "https://x.dev", Category: "Personal", IsActive: true}}))
	require.NoError(t, store.SaveTechStack([]TechCategory{{Category: "Languages"}}))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	require.ElementsMatch(t, []string{"links.json", "tech-stack.json"}, names)
}

func TestNewStoreRejectsFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewStore(path)
	require.Error(t, err)
}

func TestBundleImportExport(t *testing.T) {
	store := newTestStore(t)
	bundle := Bundle{
		PersonalInfo: samplePersonalInfo(),
		Projects:     []Project{NewProject()},
		TechStack:    []TechCategory{{Category: "Backend", Technologies: []Technology{{Name: "Go", Icon: "🐹"}}}},
		Links:        []LinkItem{{ID: 3, Title: "Blog", URL: "https://blog.dev", Category: "Content", IsActive: true, CreatedAt: "2026-01-02T03:04:05Z"}},
	}
	bundle.Projects[0].ID = 1
	bundle.Projects[0].Title = "Folio"
	bundle.Projects[0].Description = "Site"

	var buf bytes.Buffer
	require.NoError(t, EncodeBundle(&buf, bundle))

	decoded, err := DecodeBundle(&buf)
	require.NoError(t, err)
	require.NoError(t, store.Import(decoded))

	exported, err := store.Export()
	require.NoError(t, err)
	if diff := cmp.Diff(bundle, exported); diff != "" {
		t.Fatalf("bundle mismatch (-want +got):\n%s", diff)
	}
}

func TestBundleImportRejectsInvalidPersonalInfo(t *testing.T) {
	store := newTestStore(t)
	err := store.Import(Bundle{PersonalInfo: PersonalInfo{Name: "x"}})
	require.ErrorIs(t, err, ErrInvalid)

	_, statErr := os.Stat(store.Path(KindPersonalInfo))
	require.True(t, os.IsNotExist(statErr))
}

func TestBundleImportRejectsBadRecordsWithoutWriting(t *testing.T) {
	project := func(id int64, title string) Project {
		p := NewProject()
		p.ID = id
		p.Title = title
		p.Description = "d"
		return p
	}
	link := func(id int64) LinkItem {
		return LinkItem{ID: id, Title: "Blog", URL: "https://blog.dev", Category: "Content", IsActive: true}
	}

	cases := map[string]Bundle{
		"duplicate project ids": {Projects: []Project{project(5, "X"), project(5, "Y")}},
		"zero project id":       {Projects: []Project{project(0, "X")}},
		"negative project id":   {Projects: []Project{project(-3, "X")}},
		"project id too large":  {Projects: []Project{project(MaxRecordID+1, "X")}},
		"blank project":         {Projects: []Project{project(7, "")}},
		"duplicate link ids":    {Links: []LinkItem{link(2), link(2)}},
		"zero link id":          {Links: []LinkItem{link(0)}},
		"link without url":      {Links: []LinkItem{{ID: 4, Title: "Blog", Category: "Content"}}},
		"unnamed tech category": {TechStack: []TechCategory{{Category: " "}}},
	}
	for name, bundle := range cases {
		t.Run(name, func(t *testing.T) {
			store := newTestStore(t)
			bundle.PersonalInfo = samplePersonalInfo()

			require.ErrorIs(t, store.Import(bundle), ErrInvalid)
			for _, kind := range Kinds {
				_, err := os.Stat(store.Path(kind))
				require.True(t, os.IsNotExist(err), "%s was written", kind)
			}
		})
	}
}

func TestBundleImportAcceptsSameIDAcrossKinds(t *testing.T) {
	store := newTestStore(t)
	p := NewProject()
	p.ID = 1
	p.Title = "Folio"
	p.Description = "Site"
	bundle := Bundle{
		PersonalInfo: samplePersonalInfo(),
		Projects:     []Project{p},
		Links:        []LinkItem{{ID: 1, Title: "Blog", URL: "https://blog.dev", Category: "Content"}},
	}
	require.NoError(t, store.Import(bundle))

	projects, err := store.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
}
