package user

import (
	"database/sql"
	"fmt"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	selectUsersQuery = `SELECT u.id, u.name, u.phone_number, u.address, u.age, e.id, e.name
		FROM users u
		LEFT JOIN education e ON e.id = u.education_id`
	countUsersQuery = `SELECT COUNT(u.id)
		FROM users u
		LEFT JOIN education e ON e.id = u.education_id`

	insertUserQuery = `INSERT INTO users (name, phone_number, address, age, education_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	updateUserQuery = `UPDATE users
		SET name = $1,
			phone_number = $2,
			address = $3,
			age = $4,
			education_id = $5
		WHERE id = $6`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

// sortColumns whitelists the sortable columns; anything else falls back to
// the store order. ORDER BY can never carry caller input directly.
var sortColumns = map[string]string{
	"id":           "id",
	"name":         "name",
	"phone_number": "phone_number",
	"address":      "address",
	"age":          "age",
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(selectUsersQuery+` WHERE u.id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) List(q ListQuery) ([]User, error) {
	query := selectUsersQuery
	where, args := whereClause(q.Filter)
	query += where

	if col, ok := sortColumns[q.Sort.By]; ok {
		dir := "ASC"
		if q.Sort.Desc {
			dir = "DESC"
		}
		query += " ORDER BY u." + col + " " + dir
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, q.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *PostgresRepository) Count(f Filter) (int, error) {
	where, args := whereClause(f)

	var total int
	if err := r.db.QueryRow(countUsersQuery+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		u.Name,
		u.PhoneNumber,
		u.Address,
		u.Age,
		educationArg(u),
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	u.ID = id
	return u, nil
}

func (r *PostgresRepository) Update(id int, update User) (User, error) {
	result, err := r.db.Exec(
		updateUserQuery,
		update.Name,
		update.PhoneNumber,
		update.Address,
		update.Age,
		educationArg(update),
		id,
	)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// whereClause turns a Filter into a WHERE fragment with positional bound
// parameters. Substring filters travel as %value% arguments, never as
// concatenated SQL.
func whereClause(f Filter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(cond string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(cond, len(args)))
	}

	if f.Name != nil {
		add("u.name LIKE $%d", "%"+*f.Name+"%")
	}
	if f.PhoneNumber != nil {
		add("u.phone_number LIKE $%d", "%"+*f.PhoneNumber+"%")
	}
	if f.Address != nil {
		add("u.address LIKE $%d", "%"+*f.Address+"%")
	}
	if f.Age != nil {
		add("u.age = $%d", *f.Age)
	}
	if f.EducationID != nil {
		add("e.id = $%d", *f.EducationID)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// education_id must be NULL when the user has no education; a sql.NullInt
// with zero value would write 0 instead.
func educationArg(u User) any {
	if u.Education != nil {
		return u.Education.ID
	}
	return nil
}

func scanUser(scanner rowScanner) (User, error) {
	var (
		user    User
		eduID   sql.NullInt64
		eduName sql.NullString
	)
	if err := scanner.Scan(
		&user.ID,
		&user.Name,
		&user.PhoneNumber,
		&user.Address,
		&user.Age,
		&eduID,
		&eduName,
	); err != nil {
		return User{}, err
	}

	if eduID.Valid {
		user.Education = &EducationRef{ID: int(eduID.Int64), Name: eduName.String}
	}

	return user, nil
}
