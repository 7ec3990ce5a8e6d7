package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"go-finance-calculator/domain"
	"go-finance-calculator/finance"
)

// clearScreen moves the cursor home and erases the terminal.
const clearScreen = "\033[H\033[2J"

// Console interactive menu-driven front end to a finance.Service.
// It reads one answer per line from in and writes prompts and results to out.
type Console struct {
	service finance.Service
	in      *bufio.Scanner
	out     io.Writer

	// lines delivers what the scanner goroutine reads so a read can give up on cancellation
	lines    chan scanned
	scanOnce sync.Once

	// logger for diagnostics; never written to out
	logger log.Logger

	// clear whether to clear the terminal before showing the menu
	clear bool
}

type scanned struct {
	text string
	err  error
}

// Option configures a Console
type Option func(*Console)

// WithLogger sets the diagnostics logger
func WithLogger(logger log.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithClearScreen enables or disables clearing the terminal before each menu
func WithClearScreen(clear bool) Option {
	return func(c *Console) {
		c.clear = clear
	}
}

// New constructs a Console reading from in and writing to out.
func New(s finance.Service, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		service: s,
		in:      bufio.NewScanner(in),
		out:     out,
		lines:   make(chan scanned),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Calculation errors are reported to the user; only I/O errors and ctx.Err() are returned.
// A cancelled Run leaves a goroutine blocked on in until in is closed or delivers a line.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.menu()
		choice, err := c.readLine(ctx)
		if err != nil {
			return eof(err)
		}

		actx := finance.ContextWithRequestID(ctx, uuid.NewString())
		switch choice {
		case "1":
			err = c.loan(actx)
		case "2":
			err = c.convert(actx)
		case "3":
			err = c.deposit(actx)
		case "4":
			c.println("Thank you for using the financial calculator! Goodbye!")
			return nil
		default:
			c.println("Error: choose an option from 1 to 4!")
		}
		if err != nil {
			return eof(err)
		}

		c.println("\nPress Enter to continue...")
		if _, err := c.readLine(ctx); err != nil {
			return eof(err)
		}
	}
}

func (c *Console) menu() {
	if c.clear {
		fmt.Fprint(c.out, clearScreen)
	}
	c.println(rule)
	c.println("=== FINANCIAL CALCULATOR ===")
	c.println(rule)
	c.println("1. Loan calculator")
	c.println("2. Currency converter")
	c.println("3. Deposit calculator")
	c.println("4. Exit")
	c.println(separator)
	fmt.Fprint(c.out, "Choose an option: ")
}

func (c *Console) loan(ctx context.Context) error {
	c.println("\n--- LOAN CALCULATOR ---")

	var terms domain.LoanTerms
	var err error
	var line string

	if line, err = c.prompt(ctx, "Loan amount (RUB): "); err != nil {
		return err
	}
	if terms.Principal, err = parseAmount(line); err != nil {
		return c.reject(err)
	}
	if line, err = c.prompt(ctx, "Loan term (months): "); err != nil {
		return err
	}
	if terms.Months, err = parseMonths(line); err != nil {
		return c.reject(err)
	}
	if line, err = c.prompt(ctx, "Interest rate (% per year): "); err != nil {
		return err
	}
	if terms.AnnualRatePercent, err = parseFloat(line); err != nil {
		return c.reject(err)
	}

	result, err := c.service.LoanPayment(ctx, terms)
	if err != nil {
		return c.reject(err)
	}

	c.println("\n--- LOAN RESULTS ---")
	c.printf("Monthly payment: %v RUB\n", result.MonthlyPayment)
	c.printf("Total payment: %v RUB\n", result.TotalPayment)
	c.printf("Overpayment: %v RUB\n", result.Overpayment)
	return nil
}

func (c *Console) convert(ctx context.Context) error {
	c.println("\n--- CURRENCY CONVERTER ---")
	c.println("Available currencies: RUB, USD, EUR")

	from, err := c.prompt(ctx, "From currency: ")
	if err != nil {
		return err
	}
	to, err := c.prompt(ctx, "To currency: ")
	if err != nil {
		return err
	}
	line, err := c.prompt(ctx, "Amount to convert: ")
	if err != nil {
		return err
	}
	amount, err := parseAmount(line)
	if err != nil {
		return c.reject(err)
	}

	fromCurrency := domain.Currency(strings.ToUpper(from))
	toCurrency := domain.Currency(strings.ToUpper(to))
	result, err := c.service.Convert(ctx, amount, fromCurrency, toCurrency)
	if err != nil {
		return c.reject(err)
	}

	c.println("\n--- CONVERSION RESULT ---")
	c.printf("%v %v = %v %v\n", amount, fromCurrency, result.Amount, toCurrency)
	return nil
}

func (c *Console) deposit(ctx context.Context) error {
	c.println("\n--- DEPOSIT CALCULATOR ---")

	var terms domain.DepositTerms
	var err error
	var line string

	if line, err = c.prompt(ctx, "Deposit amount (RUB): "); err != nil {
		return err
	}
	if terms.Principal, err = parseAmount(line); err != nil {
		return c.reject(err)
	}
	if line, err = c.prompt(ctx, "Deposit term (months): "); err != nil {
		return err
	}
	if terms.Months, err = parseMonths(line); err != nil {
		return c.reject(err)
	}
	if line, err = c.prompt(ctx, "Interest rate (% per year): "); err != nil {
		return err
	}
	if terms.AnnualRatePercent, err = parseFloat(line); err != nil {
		return c.reject(err)
	}
	if line, err = c.prompt(ctx, "Deposit type (1 - capitalized, 2 - simple): "); err != nil {
		return err
	}
	// An unknown selector leaves Mode zero so Deposit validates the amounts first.
	mode, modeErr := finance.ParseDepositMode(line)
	terms.Mode = mode

	result, err := c.service.Deposit(ctx, terms)
	if modeErr != nil && errors.Is(err, finance.ErrInvalidMode) {
		err = modeErr
	}
	if err != nil {
		return c.reject(err)
	}

	c.println("\n--- DEPOSIT RESULTS ---")
	c.printf("Deposit income: %v RUB\n", result.Income)
	c.printf("Total amount: %v RUB\n", result.TotalAmount)
	return nil
}

// reject reports a calculation error to the user. It always returns nil so the menu continues.
func (c *Console) reject(err error) error {
	level.Debug(c.logger).Log("msg", "calculation rejected", "kind", finance.Kind(err), "err", err)
	c.println(message(err))
	return nil
}

func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine(ctx)
}

// readLine waits for the next trimmed input line or for ctx to be cancelled.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.scanOnce.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan feeds input lines to readLine and finishes with the read error or io.EOF.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- scanned{text: strings.TrimSpace(c.in.Text())}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- scanned{err: fmt.Errorf("reading input: %w", err)}
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// eof treats the end of input as a normal exit.
func eof(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
