package db

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrWordNotFound = errors.New("word not found")
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// saveWordsBatch keeps one upsert under the 65535 bind parameter limit.
var saveWordsBatch = 1000

type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type Postgres struct {
	db pool
}

func NewPostgres(ctx context.Context, dbConnect string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dbConnect)
	if err != nil {
		return nil, fmt.Errorf("error parsing connection string: %w", err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging to database: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (db *Postgres) Close() {
	db.db.Close()
}

// LoadDictionary returns every stored word with its stem.
func (db *Postgres) LoadDictionary(ctx context.Context) (map[string]string, error) {
	query := `SELECT word, stem FROM words`

	rows, err := db.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var word, stem string
		if err := rows.Scan(&word, &stem); err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		entries[word] = stem
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	logrus.WithField("words", len(entries)).Debug("dictionary loaded from database")

	return entries, nil
}

func (db *Postgres) LookupWord(ctx context.Context, word string) (string, bool, error) {
	query, args, err := psql.Select("stem").From("words").Where(sq.Eq{"word": word}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("database: %w", err)
	}

	var stem string
	err = db.db.QueryRow(ctx, query, args...).Scan(&stem)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("database: %w", err)
	}

	return stem, true, nil
}

// SaveWords upserts word -> stem pairs in batches inside one transaction.
func (db *Postgres) SaveWords(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for w := range entries {
		keys = append(keys, w)
	}
	sort.Strings(keys)

	tx, err := db.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	for start := 0; start < len(keys); start += saveWordsBatch {
		end := min(start+saveWordsBatch, len(keys))

		insert := psql.Insert("words").Columns("word", "stem")
		for _, w := range keys[start:end] {
			insert = insert.Values(w, entries[w])
		}

		stmt, args, err := insert.Suffix("ON CONFLICT (word) DO UPDATE SET stem = EXCLUDED.stem").ToSql()
		if err == nil {
			_, err = tx.Exec(ctx, stmt, args...)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logrus.WithError(rbErr).Warn("error rolling back words upsert")
			}
			return fmt.Errorf("database: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

// CountWords returns the number of stored words.
func (db *Postgres) CountWords(ctx context.Context) (int, error) {
	var count int
	err := db.db.QueryRow(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("database: %w", err)
	}

	return count, nil
}

func (db *Postgres) DeleteWord(ctx context.Context, word string) error {
	stmt, args, err := psql.Delete("words").Where(sq.Eq{"word": word}).ToSql()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	tag, err := db.db.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWordNotFound
	}

	return nil
}

type User struct {
	Login string
	Role  string
}

func (db *Postgres) GetUserByLogin(ctx context.Context, login string) (User, error) {
	stmt := `SELECT login, role FROM users WHERE login = $1;`

	row := db.db.QueryRow(ctx, stmt, login)
	var user User
	err := row.Scan(&user.Login, &user.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		logrus.Info(err)
		return User{}, fmt.Errorf("database: %w", err)
	}

	return user, nil
}

// GetUserPasswordByLogin returns the stored bcrypt hash.
func (db *Postgres) GetUserPasswordByLogin(ctx context.Context, login string) (string, error) {
	stmt := `SELECT password FROM users WHERE login = $1;`

	row := db.db.QueryRow(ctx, stmt, login)

	var password string

	err := row.Scan(&password)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		logrus.Info(err)
		return "", fmt.Errorf("database: %w", err)
	}

	return password, nil
}

// SaveUser creates the user or replaces its password hash and role.
func (db *Postgres) SaveUser(ctx context.Context, user User, passwordHash string) error {
	stmt := `
	INSERT INTO users (login, password, role)
	VALUES ($1, $2, $3)
	ON CONFLICT (login) DO UPDATE SET password = EXCLUDED.password, role = EXCLUDED.role;`

	_, err := db.db.Exec(ctx, stmt, user.Login, passwordHash, user.Role)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}
