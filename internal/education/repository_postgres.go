package education

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listEducationQuery    = `SELECT id, name FROM education ORDER BY id`
	getEducationByIDQuery = `SELECT id, name FROM education WHERE id = $1`
	insertEducationQuery  = `INSERT INTO education (name) VALUES ($1) RETURNING id`
	updateEducationQuery  = `UPDATE education SET name = $1 WHERE id = $2`
	deleteEducationQuery  = `DELETE FROM education WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Education, error) {
	rows, err := r.db.Query(listEducationQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Education, 0)
	for rows.Next() {
		var item Education
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Education, error) {
	var item Education
	err := r.db.QueryRow(getEducationByIDQuery, id).Scan(&item.ID, &item.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return Education{}, ErrNotFound
		}
		return Education{}, err
	}

	return item, nil
}

func (r *PostgresRepository) Create(e Education) (Education, error) {
	var id int
	if err := r.db.QueryRow(insertEducationQuery, e.Name).Scan(&id); err != nil {
		return Education{}, err
	}

	e.ID = id
	return e, nil
}

func (r *PostgresRepository) Update(id int, update Education) (Education, error) {
	result, err := r.db.Exec(updateEducationQuery, update.Name, id)
	if err != nil {
		return Education{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Education{}, err
	}
	if affected == 0 {
		return Education{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteEducationQuery, id)
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
