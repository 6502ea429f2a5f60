// Package console implements the numbered text menu over any reader/writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/importer"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/logging"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

const menuText = `
--- Restaurant Manager ---
1. Load data from file
2. Display all data
3. Add new record
4. Remove record
5. Update record
6. Calculate total payroll
7. Exit
8. Toggle Open Late Status
Enter your choice: `

var lettersAndSpaces = regexp.MustCompile(`^[a-zA-Z ]+$`)

// errEOF ends the loop when input runs out mid-prompt
var errEOF = errors.New("end of input")

// Console drives a RestaurantService from line-oriented input
type Console struct {
	svc service.RestaurantService
	in  *bufio.Scanner
	out io.Writer
	log *logging.Logger
}

// New creates a console reading from in and writing to out
func New(svc service.RestaurantService, in io.Reader, out io.Writer, log *logging.Logger) *Console {
	if log == nil {
		log = logging.Nop()
	}
	return &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log.With("component", "console"),
	}
}

// Run shows the menu until the user exits or input ends
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out, menuText)
		choice, err := c.readLine()
		if err != nil {
			return nil
		}

		var msg string
		switch choice {
		case "1":
			msg, err = c.loadFile(ctx)
		case "2":
			msg = strings.Join(DisplayAllLines(c.svc.Snapshot()), "\n")
		case "3":
			msg, err = c.addRecord(ctx)
		case "4":
			msg, err = c.removeRecord(ctx)
		case "5":
			msg, err = c.updateRecord(ctx)
		case "6":
			msg = PayrollText(c.svc.Payroll().Total)
		case "7":
			fmt.Fprintln(c.out, "Exiting the program. Goodbye!")
			return nil
		case "8":
			var openLate bool
			openLate, err = c.svc.ToggleOpenLate(ctx)
			msg = "Open late is now set to: " + checkMark(openLate)
		default:
			msg = "Invalid option. Please select 1–8."
		}

		switch {
		case errors.Is(err, errEOF):
			return nil
		case err != nil:
			c.log.Error("menu action failed", "choice", choice, "error", err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
		default:
			fmt.Fprintln(c.out, msg)
		}
	}
}

// DisplayAllLines renders the restaurant header, the roster and the menu
func DisplayAllLines(snap service.Snapshot) []string {
	status := "Closes Early ❌"
	if snap.Status == domain.OpenLate {
		status = "Open Late ✅"
	}

	lines := []string{
		"Restaurant: " + snap.Name,
		"Status: " + status,
		"------------------------------------",
	}

	if len(snap.Employees) == 0 {
		lines = append(lines, "No employees to display.")
	} else {
		lines = append(lines,
			"\nEmployees:",
			"Name            | Rate     | Hours | Weekly Pay",
			"----------------|----------|-------|------------",
		)
		for _, e := range snap.Employees {
			lines = append(lines, e.Display)
		}
	}

	if len(snap.Dishes) == 0 {
		lines = append(lines, "Menu is empty.")
	} else {
		lines = append(lines,
			"\nMenu:",
			"Dish Name           | Price",
			"--------------------|--------",
		)
		for _, d := range snap.Dishes {
			lines = append(lines, d.Display)
		}
	}

	return lines
}

func PayrollText(total float64) string {
	return fmt.Sprintf("Total weekly payroll: $%.2f", total)
}

func (c *Console) loadFile(ctx context.Context) (string, error) {
	path, err := c.prompt("Enter full file path: ")
	if err != nil {
		return "", err
	}

	summary, err := importer.ImportFile(ctx, path, c.svc)
	switch {
	case errors.Is(err, importer.ErrEmptyFilename):
		return "Filename cannot be empty.", nil
	case errors.Is(err, importer.ErrFileNotFound):
		return "File not found: " + path, nil
	case err != nil:
		return "", err
	}

	for _, problem := range summary.Problems {
		fmt.Fprintln(c.out, "⚠️ "+problem)
	}
	c.log.Info("file imported", "path", path, "added", summary.Added, "errors", summary.Errors)
	return "✅ " + summary.Message(), nil
}

func (c *Console) addRecord(ctx context.Context) (string, error) {
	kind, err := c.promptLine("Add (1) Employee or (2) Dish?")
	if err != nil {
		return "", err
	}

	switch kind {
	case "1":
		name, err := c.prompt("Employee name: ")
		if err != nil {
			return "", err
		}
		if !lettersAndSpaces.MatchString(name) {
			return "Name must contain only letters and spaces, and cannot be empty.", nil
		}
		rate, hours, ok, err := c.promptTwoNumbers("Hourly rate: ", "Hours worked: ")
		if err != nil {
			return "", err
		}
		if !ok {
			return "Invalid input; please enter numbers for rate/hours.", nil
		}

		res, err := c.svc.AddEmployee(ctx, name, rate, hours)
		if err != nil {
			return "", err
		}
		if !res.OK {
			return "Failed to add employee: " + res.Message, nil
		}
		return "Employee added successfully.", nil

	case "2":
		name, err := c.prompt("Dish name: ")
		if err != nil {
			return "", err
		}
		if name == "" {
			return "Dish name cannot be empty.", nil
		}
		price, ok, err := c.promptNumber("Price: ")
		if err != nil {
			return "", err
		}
		if !ok {
			return "Invalid input; please enter a number for price.", nil
		}

		res, err := c.svc.AddDish(ctx, name, price)
		if err != nil {
			return "", err
		}
		if !res.OK {
			return "Failed to add dish: " + res.Message, nil
		}
		return "Dish added successfully.", nil
	}

	return "Invalid selection.", nil
}

func (c *Console) removeRecord(ctx context.Context) (string, error) {
	kind, err := c.promptLine("Remove (1) Employee or (2) Dish?")
	if err != nil {
		return "", err
	}

	var remove func(context.Context, string) (domain.Result, error)
	var label string
	switch kind {
	case "1":
		remove, label = c.svc.RemoveEmployee, "Employee name to remove: "
	case "2":
		remove, label = c.svc.RemoveDish, "Dish name to remove: "
	default:
		return "Invalid selection.", nil
	}

	name, err := c.prompt(label)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "Name cannot be empty.", nil
	}

	res, err := remove(ctx, name)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Console) updateRecord(ctx context.Context) (string, error) {
	kind, err := c.promptLine("Update (1) Employee or (2) Dish?")
	if err != nil {
		return "", err
	}

	switch kind {
	case "1":
		name, err := c.prompt("Enter employee name to update: ")
		if err != nil {
			return "", err
		}
		if !lettersAndSpaces.MatchString(name) {
			return "Name must contain only letters and spaces, and cannot be empty.", nil
		}
		rate, hours, ok, err := c.promptTwoNumbers("New hourly rate: ", "New hours worked: ")
		if err != nil {
			return "", err
		}
		if !ok {
			return "Invalid input; please enter numeric values.", nil
		}

		res, err := c.svc.UpdateEmployee(ctx, name, rate, hours)
		if err != nil {
			return "", err
		}
		return res.Message, nil

	case "2":
		name, err := c.prompt("Enter dish name to update: ")
		if err != nil {
			return "", err
		}
		if name == "" {
			return "Dish name cannot be empty.", nil
		}
		price, ok, err := c.promptNumber("New price: ")
		if err != nil {
			return "", err
		}
		if !ok {
			return "Invalid input; please enter a number for price.", nil
		}

		res, err := c.svc.UpdateDish(ctx, name, price)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}

	return "Invalid selection.", nil
}

// promptTwoNumbers stops at the first answer that is not a number
func (c *Console) promptTwoNumbers(first, second string) (float64, float64, bool, error) {
	a, okA, err := c.promptNumber(first)
	if err != nil {
		return 0, 0, false, err
	}
	if !okA {
		return 0, 0, false, nil
	}
	b, okB, err := c.promptNumber(second)
	if err != nil {
		return 0, 0, false, err
	}
	return a, b, okB, nil
}

func (c *Console) promptNumber(label string) (float64, bool, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, nil
	}
	return v, true, nil
}

// prompt prints label without a newline and reads the answer
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) promptLine(label string) (string, error) {
	fmt.Fprintln(c.out, label)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func checkMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
