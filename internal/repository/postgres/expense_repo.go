package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL.
// Reads join the category name onto each record so the reporting engine
// always receives pre-denormalized rows.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, err
	}

	var expenseDate pgtype.Date
	expenseDate.Time = expense.Date
	expenseDate.Valid = true

	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO expenses (user_id, description, amount, expense_date, category_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		expense.UserID, expense.Description, amount, expenseDate, expense.CategoryID)

	if err := row.Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID retrieves an expense by its ID for a user
func (r *ExpenseRepository) GetByID(userID uuid.UUID, id int64) (*domain.Expense, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT e.id, e.user_id, e.description, e.amount, e.expense_date,
		        e.category_id, c.name, e.created_at, e.updated_at
		 FROM expenses e
		 JOIN categories c ON c.id = e.category_id
		 WHERE e.user_id = $1 AND e.id = $2`,
		userID, id)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// GetByUser retrieves a user's expenses with optional category and date
// filters, most recent first.
func (r *ExpenseRepository) GetByUser(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	var categoryID *int64
	var startDate, endDate *time.Time
	if filters != nil {
		categoryID = filters.CategoryID
		startDate = filters.StartDate
		endDate = filters.EndDate
	}

	rows, err := r.pool.Query(context.Background(),
		`SELECT e.id, e.user_id, e.description, e.amount, e.expense_date,
		        e.category_id, c.name, e.created_at, e.updated_at
		 FROM expenses e
		 JOIN categories c ON c.id = e.category_id
		 WHERE e.user_id = $1
		   AND ($2::bigint IS NULL OR e.category_id = $2)
		   AND ($3::date IS NULL OR e.expense_date >= $3)
		   AND ($4::date IS NULL OR e.expense_date <= $4)
		 ORDER BY e.expense_date DESC, e.id DESC`,
		userID, categoryID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// Update updates an existing expense
func (r *ExpenseRepository) Update(expense *domain.Expense) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, err
	}

	var expenseDate pgtype.Date
	expenseDate.Time = expense.Date
	expenseDate.Valid = true

	row := r.pool.QueryRow(context.Background(),
		`UPDATE expenses
		 SET description = $3, amount = $4, expense_date = $5, category_id = $6,
		     updated_at = NOW()
		 WHERE user_id = $1 AND id = $2
		 RETURNING updated_at`,
		expense.UserID, expense.ID, expense.Description, amount, expenseDate, expense.CategoryID)

	if err := row.Scan(&expense.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Delete removes a user's expense
func (r *ExpenseRepository) Delete(userID uuid.UUID, id int64) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM expenses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	expense := &domain.Expense{}
	var amount pgtype.Numeric
	var expenseDate pgtype.Date

	err := row.Scan(&expense.ID, &expense.UserID, &expense.Description, &amount,
		&expenseDate, &expense.CategoryID, &expense.CategoryName,
		&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}

	expense.Amount, err = pgNumericToDecimal(amount)
	if err != nil {
		return nil, err
	}
	expense.Date = expenseDate.Time
	return expense, nil
}
