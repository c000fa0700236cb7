package topping

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pizzeria/internal/cli"
	"github.com/thenoetrevino/pizzeria/internal/client"
	"github.com/thenoetrevino/pizzeria/internal/database"
	"github.com/thenoetrevino/pizzeria/internal/testutil"
	clitest "github.com/thenoetrevino/pizzeria/internal/testutil/cli"
)

// setupTest starts a test API and returns its repository and a function that
// runs a command against it
func setupTest(t *testing.T) (*database.Repository, func(cmd *cobra.Command, args ...string) (string, string, error)) {
	t.Helper()
	baseURL, repo := clitest.SetupAPI(t)
	ctx := cli.WithCLI(context.Background(), cli.NewCLI(baseURL))

	return repo, func(cmd *cobra.Command, args ...string) (string, string, error) {
		cmd.SetContext(ctx)
		return testutil.ExecuteCommand(t, cmd, args...)
	}
}

func toppingNames(t *testing.T, repo *database.Repository) []string {
	t.Helper()
	toppings, err := repo.GetAllToppings(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(toppings))
	for _, tp := range toppings {
		names = append(names, tp.Name)
	}
	return names
}

func TestAdd(t *testing.T) {
	repo, run := setupTest(t)

	stdout, _, err := run(AddCmd(), "--name=Pepperoni")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Topping 'Pepperoni' added")
	assert.Equal(t, []string{"Pepperoni"}, toppingNames(t, repo))
}

func TestAdd_JSON(t *testing.T) {
	_, run := setupTest(t)

	stdout, _, err := run(AddCmd(), "--name=Basil", "--json")

	require.NoError(t, err)
	result := testutil.ParseJSON(t, stdout)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, map[string]any{"name": "Basil"}, result["data"])
}

func TestAdd_Duplicate(t *testing.T) {
	repo, run := setupTest(t)
	testutil.CreateTestTopping(t, repo, "Olives")

	_, stderr, err := run(AddCmd(), "--name=olives")

	assert.ErrorIs(t, err, cli.ErrReported)
	assert.Contains(t, stderr, "Topping 'olives' already exists.")
	assert.Equal(t, []string{"Olives"}, toppingNames(t, repo))
}

func TestAdd_DuplicateJSON(t *testing.T) {
	repo, run := setupTest(t)
	testutil.CreateTestTopping(t, repo, "Olives")

	stdout, _, err := run(AddCmd(), "--name=Olives", "--json")

	assert.ErrorIs(t, err, cli.ErrReported)
	result := testutil.ParseJSON(t, stdout)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, cli.CodeRejected, errData["code"])
	assert.Equal(t, "Topping 'Olives' already exists.", errData["message"])
}

func TestAdd_MissingName(t *testing.T) {
	_, run := setupTest(t)

	_, _, err := run(AddCmd())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "name" not set`)
}

func TestAdd_UnreachableAPI(t *testing.T) {
	ctx := cli.WithCLI(context.Background(), cli.NewCLI("http://127.0.0.1:1"))
	cmd := AddCmd()
	cmd.SetContext(ctx)

	_, stderr, err := testutil.ExecuteCommand(t, cmd, "--name=Ham")

	assert.ErrorIs(t, err, cli.ErrReported)
	assert.Contains(t, stderr, client.FallbackErrorMessage)
	assert.Contains(t, stderr, "An error occurred.")
}

func TestList(t *testing.T) {
	repo, run := setupTest(t)
	testutil.CreateTestTopping(t, repo, "Cheese")
	testutil.CreateTestTopping(t, repo, "Mushroom")

	stdout, _, err := run(ListCmd())

	require.NoError(t, err)
	assert.Contains(t, stdout, "Cheese")
	assert.Contains(t, stdout, "Mushroom")
}

func TestList_Empty(t *testing.T) {
	_, run := setupTest(t)

	stdout, _, err := run(ListCmd())

	require.NoError(t, err)
	assert.Contains(t, stdout, "No toppings yet")
}

func TestList_JSON(t *testing.T) {
	repo, run := setupTest(t)
	id := testutil.CreateTestTopping(t, repo, "Cheese")

	stdout, _, err := run(ListCmd(), "--json")

	require.NoError(t, err)
	result := testutil.ParseJSON(t, stdout)
	data := result["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, float64(id), first["id"])
	assert.Equal(t, "Cheese", first["name"])
}

func TestList_Quiet(t *testing.T) {
	repo, run := setupTest(t)
	first := testutil.CreateTestTopping(t, repo, "Cheese")
	second := testutil.CreateTestTopping(t, repo, "Ham")

	stdout, _, err := run(ListCmd(), "--quiet")

	require.NoError(t, err)
	assert.Equal(t, []string{itoa(first), itoa(second)}, splitLines(stdout))
}

func TestRename(t *testing.T) {
	repo, run := setupTest(t)
	id := testutil.CreateTestTopping(t, repo, "Olive")

	_, _, err := run(RenameCmd(), "--id="+itoa(id), "--name=Black Olive")

	require.NoError(t, err)
	assert.Equal(t, []string{"Black Olive"}, toppingNames(t, repo))
}

func TestRename_NotFound(t *testing.T) {
	_, run := setupTest(t)

	stdout, _, err := run(RenameCmd(), "--id=999", "--name=Ghost", "--json")

	assert.ErrorIs(t, err, cli.ErrReported)
	errData := testutil.ParseJSON(t, stdout)["error"].(map[string]any)
	assert.Equal(t, cli.CodeNotFound, errData["code"])
	assert.Equal(t, "Topping not found", errData["message"])
}

func TestDelete(t *testing.T) {
	repo, run := setupTest(t)
	id := testutil.CreateTestTopping(t, repo, "Anchovies")

	stdout, _, err := run(DeleteCmd(), "--id="+itoa(id), "--quiet")

	require.NoError(t, err)
	assert.Equal(t, []string{itoa(id)}, splitLines(stdout))
	assert.Empty(t, toppingNames(t, repo))
}

func TestDelete_NotFound(t *testing.T) {
	_, run := setupTest(t)

	_, stderr, err := run(DeleteCmd(), "--id=42")

	assert.ErrorIs(t, err, cli.ErrReported)
	assert.Contains(t, stderr, "Topping not found")
}

func TestToppingCmd_Subcommands(t *testing.T) {
	cmd := ToppingCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "rename", "delete"}, names)
}
