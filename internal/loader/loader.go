// Package loader reads a store data file into the in-memory aggregate.
// The format is positional and the loader does not validate it beyond what
// it needs to keep scanning; malformed records degrade to zero values.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openretail/supermart-sim/internal/logger"
	"github.com/openretail/supermart-sim/internal/model"
)

// DefaultStock is the shelf quantity every item starts with; the data file
// does not carry stock levels.
const DefaultStock = 30

const (
	aisleTerminator = "############################"
	employeeHeader  = "*Employee Information*"
)

type FileLoader struct {
	logger logger.ZapLogger
}

func NewFileLoader(log logger.ZapLogger) *FileLoader {
	return &FileLoader{logger: log}
}

// Load parses a store data file:
//
//	<store name>
//	<store hours>
//	<total funds>
//	<membership fee>
//	*Aisle Information*
//	Aisle 0: <name>
//	<item_name> <wholesale> <regular> <member>   (underscores become spaces)
//	############################
//	...
//	*Employee Information*
//	<employee_name> <id> <salary>
func (l *FileLoader) Load(path string) (*model.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store data file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	st := &model.Store{}

	st.Name = l.nextLine(scanner)
	st.Hours = l.nextLine(scanner)
	st.TotalFunds = l.parseAmount(l.nextLine(scanner), "total funds")
	st.MembershipFee = l.parseAmount(l.nextLine(scanner), "membership fee")
	l.nextLine(scanner) // aisle section heading

	// Aisle sections run until the employee header.
	var aisle *model.Aisle
	for scanner.Scan() {
		line := scanner.Text()
		if line == employeeHeader {
			break
		}
		switch {
		case strings.Contains(line, "Aisle"):
			st.Aisles = append(st.Aisles, model.Aisle{Name: aisleName(line)})
			aisle = &st.Aisles[len(st.Aisles)-1]
		case line == aisleTerminator || aisle == nil:
			// Section divider, or an item row before any aisle header.
		default:
			aisle.Items = append(aisle.Items, l.parseItem(line))
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		st.Employees = append(st.Employees, l.parseEmployee(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store data file: %w", err)
	}

	l.logger.Info("store snapshot loaded",
		zap.String("store", st.Name),
		zap.Int("aisles", len(st.Aisles)),
		zap.Int("employees", len(st.Employees)),
	)
	return st, nil
}

func (l *FileLoader) nextLine(scanner *bufio.Scanner) string {
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}

func aisleName(line string) string {
	if i := strings.Index(line, ":"); i >= 0 && i+2 <= len(line) {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}

func (l *FileLoader) parseItem(line string) model.Item {
	fields := strings.Fields(line)
	item := model.Item{Quantity: DefaultStock}
	if len(fields) > 0 {
		item.Name = strings.ReplaceAll(fields[0], "_", " ")
	}
	if len(fields) > 1 {
		item.Wholesale = l.parseAmount(fields[1], "item wholesale")
	}
	if len(fields) > 2 {
		item.RegularPrice = l.parseAmount(fields[2], "item regular price")
	}
	if len(fields) > 3 {
		item.MemberPrice = l.parseAmount(fields[3], "item member price")
	}
	return item
}

func (l *FileLoader) parseEmployee(line string) model.Employee {
	fields := strings.Fields(line)
	emp := model.Employee{}
	if len(fields) > 0 {
		emp.Name = strings.ReplaceAll(fields[0], "_", " ")
	}
	if len(fields) > 1 {
		emp.ID = fields[1]
	}
	if len(fields) > 2 {
		emp.Salary = l.parseAmount(fields[2], "employee salary")
	}
	return emp
}

// parseAmount degrades malformed numbers to zero instead of failing the
// whole load, mirroring how the data files have always been treated.
func (l *FileLoader) parseAmount(raw, what string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		l.logger.Warn("unparseable amount in store data file",
			zap.String("field", what),
			zap.String("raw", raw),
		)
		return decimal.Zero
	}
	return d
}
