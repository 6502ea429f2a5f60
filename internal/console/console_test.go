package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

func run(t *testing.T, lines ...string) (string, service.RestaurantService) {
	t.Helper()
	r, err := domain.NewRestaurant("Cafe")
	require.NoError(t, err)
	svc := service.NewRestaurantService(r, nil, nil)

	var out bytes.Buffer
	c := New(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, nil)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), svc
}

func TestConsole_AddDisplayAndPayroll(t *testing.T) {
	out, svc := run(t,
		"3", "1", "Alice", "20", "30",
		"3", "2", "Soup", "5",
		"2",
		"6",
		"7",
	)

	assert.Contains(t, out, "Employee added successfully.")
	assert.Contains(t, out, "Dish added successfully.")
	assert.Contains(t, out, "Restaurant: Cafe")
	assert.Contains(t, out, "Status: Closes Early ❌")
	assert.Contains(t, out, "0 | Alice")
	assert.Contains(t, out, "[0] Soup")
	assert.Contains(t, out, "Total weekly payroll: $600.00")
	assert.Contains(t, out, "Exiting the program. Goodbye!")
	assert.Equal(t, 1, svc.Restaurant().EmployeeCount())
}

func TestConsole_InvalidInput(t *testing.T) {
	out, svc := run(t,
		"9",
		"3", "1", "R2D2",
		"3", "1", "Bob", "abc",
		"3", "3",
		"3", "2", "Cake", "-1",
		"4", "1", "",
		"5", "2", "Stew", "4",
		"7",
	)

	assert.Contains(t, out, "Invalid option. Please select 1–8.")
	assert.Contains(t, out, "Name must contain only letters and spaces, and cannot be empty.")
	assert.Contains(t, out, "Invalid input; please enter numbers for rate/hours.")
	assert.Contains(t, out, "Invalid selection.")
	assert.Contains(t, out, "Failed to add dish: Price cannot be negative")
	assert.Contains(t, out, "Name cannot be empty.")
	assert.Contains(t, out, "Dish not found.")
	assert.Equal(t, 0, svc.Restaurant().EmployeeCount())
}

func TestConsole_UpdateRemoveToggle(t *testing.T) {
	out, svc := run(t,
		"3", "1", "Jane Doe", "12.5", "40",
		"5", "1", "Jane Doe", "-1", "38",
		"8",
		"4", "1", "jane doe",
		"7",
	)

	assert.Contains(t, out, "Employee update completed with validation errors.")
	assert.Contains(t, out, "Open late is now set to: ✅")
	assert.Contains(t, out, "Employee removed successfully.")
	assert.True(t, svc.Restaurant().OpenLate())
	assert.Equal(t, 0, svc.Restaurant().EmployeeCount())
}

func TestConsole_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("Charlie,15,40\nPizza,9.99\nbad line\n"), 0644))

	out, svc := run(t,
		"1", path,
		"1", "",
		"1", filepath.Join(t.TempDir(), "nope.txt"),
		"7",
	)

	assert.Contains(t, out, "⚠️ Invalid format: bad line")
	assert.Contains(t, out, "✅ Load complete: 2 entries added, 1 errors.")
	assert.Contains(t, out, "Filename cannot be empty.")
	assert.Contains(t, out, "File not found: ")
	assert.Equal(t, 1, svc.Restaurant().DishCount())
}

func TestConsole_EndOfInputExits(t *testing.T) {
	out, _ := run(t, "3", "1", "Alice")
	assert.NotContains(t, out, "Goodbye")
}

func TestDisplayAllLines_Empty(t *testing.T) {
	lines := DisplayAllLines(service.Snapshot{Name: "Cafe", Status: domain.OpenLate})
	assert.Equal(t, []string{
		"Restaurant: Cafe",
		"Status: Open Late ✅",
		"------------------------------------",
		"No employees to display.",
		"Menu is empty.",
	}, lines)
}
