package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag in the command tree to its default so one
// test's flags never reach the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func seedDB(t *testing.T, ledger progress.Ledger) string {
	t.Helper()
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "skillstars.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, progress.NewRepo(st.Blobs()).Save(context.Background(), ledger))
	require.NoError(t, st.Close())
	return path
}

func TestSkills_List(t *testing.T) {
	out, err := execute(t, "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "raiseHand")
	assert.Contains(t, out, "Transition Tasks")
	assert.Contains(t, out, "6 skills")
}

func TestSkills_One(t *testing.T) {
	out, err := execute(t, "skills", "lineUp")
	require.NoError(t, err)
	assert.Contains(t, out, "Line Up (lineUp)")
	assert.Contains(t, out, "4. Wait signal")
}

func TestSkills_Unknown(t *testing.T) {
	_, err := execute(t, "skills", "juggle")
	assert.ErrorIs(t, err, catalog.ErrUnknownSkill)
}

func TestProgress_Week(t *testing.T) {
	db := seedDB(t, progress.Ledger{
		"2024-W10": {catalog.RaiseHand: 5, catalog.LineUp: 3},
		"2024-W11": {catalog.RaiseHand: 4},
	})

	out, err := execute(t, "progress", "--db", db, "--week", "2024-W10")
	require.NoError(t, err)
	assert.Contains(t, out, "Week 2024-W10 (from Mon Mar 4, 2024)")
	assert.Contains(t, out, "★ 8")
	assert.NotContains(t, out, "2024-W11")
}

func TestProgress_All(t *testing.T) {
	db := seedDB(t, progress.Ledger{
		"2024-W10": {catalog.RaiseHand: 5},
		"2024-W11": {catalog.CleanDesk: 4},
	})

	out, err := execute(t, "progress", "--db", db, "--all")
	require.NoError(t, err)
	w11 := strings.Index(out, "Week 2024-W11")
	w10 := strings.Index(out, "Week 2024-W10")
	require.True(t, w11 >= 0 && w10 >= 0, out)
	assert.Less(t, w11, w10, "newest week first")
}

func TestProgress_BadWeek(t *testing.T) {
	_, err := execute(t, "progress", "--week", "2024-10")
	assert.Error(t, err)
}

func TestProgress_WeekAndAll(t *testing.T) {
	_, err := execute(t, "progress", "--week", "2024-W10", "--all")
	assert.Error(t, err)
}

func TestExecute_FlagsDoNotLeak(t *testing.T) {
	db := seedDB(t, progress.Ledger{"2024-W10": {catalog.RaiseHand: 5}})

	t.Run("with flags", func(t *testing.T) {
		_, err := execute(t, "progress", "--db", db, "--week", "2024-W10", "--mute")
		require.NoError(t, err)
	})

	for _, name := range []string{"db", "mute"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.False(t, f.Changed, "--%s still marked changed", name)
		assert.Equal(t, f.DefValue, f.Value.String(), "--%s not restored", name)
	}
	week := progressCmd.Flags().Lookup("week")
	assert.False(t, week.Changed)
	assert.Empty(t, week.Value.String())
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "skillstars "))
}
