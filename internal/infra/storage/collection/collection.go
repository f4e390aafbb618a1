package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HeritageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HeritageService/pkg/psqlbuilder"
)

// insertBatchSize ограничивает число строк в одном INSERT
const insertBatchSize = 200

// DBExecutor интерфейс для выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor

// RowScanner *sql.Row или *sql.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// Schema описывает отображение документа T на таблицу
type Schema[T any] struct {
	Table   string
	Columns []string
	// Values раскладывает документ по колонкам в порядке Columns
	Values func(doc *T) ([]interface{}, error)
	// Scan собирает документ из строки, выбранной в порядке Columns
	Scan func(row RowScanner) (*T, error)
}

// FindOptions сортировка и ограничение выборки
type FindOptions struct {
	Sort  []string // например "start_date ASC"
	Limit uint64   // 0 - без ограничения
}

// Collection единый интерфейс к коллекции документов поверх таблицы PostgreSQL
// Каждый вызов атомарен сам по себе; если в контексте есть транзакция, используется она
type Collection[T any] struct {
	db     DBExecutor
	schema Schema[T]
}

// New создает коллекцию
func New[T any](db DBExecutor, schema Schema[T]) *Collection[T] {
	return &Collection[T]{db: db, schema: schema}
}

// Table возвращает имя таблицы коллекции
func (c *Collection[T]) Table() string {
	return c.schema.Table
}

// InsertOne сохраняет один документ
func (c *Collection[T]) InsertOne(ctx context.Context, doc *T) error {
	_, err := c.InsertMany(ctx, []*T{doc})
	return err
}

// InsertMany сохраняет документы пачками, возвращает число вставленных строк
func (c *Collection[T]) InsertMany(ctx context.Context, docs []*T) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	inserted := 0
	for batch := range slices.Chunk(docs, insertBatchSize) {
		builder := psqlbuilder.Insert(c.schema.Table).Columns(c.schema.Columns...)
		for _, doc := range batch {
			values, err := c.schema.Values(doc)
			if err != nil {
				return inserted, fmt.Errorf("%w: InsertMany - %s: %v", ErrEncode, c.schema.Table, err)
			}
			builder = builder.Values(values...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("%w: InsertMany - build insert query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("%w: InsertMany - execute insert into %s: %v", ErrExecQuery, c.schema.Table, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("%w: InsertMany - get rows affected: %v", ErrExecQuery, err)
		}
		inserted += int(rows)
	}

	return inserted, nil
}

// Find возвращает документы, подходящие под фильтр (nil - все)
func (c *Collection[T]) Find(ctx context.Context, filter squirrel.Sqlizer, opts FindOptions) ([]*T, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	builder := psqlbuilder.Select(c.schema.Columns...).From(c.schema.Table)
	if filter != nil {
		builder = builder.Where(filter)
	}
	if len(opts.Sort) > 0 {
		builder = builder.OrderBy(opts.Sort...)
	}
	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Find - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Find - execute query on %s: %v", ErrExecQuery, c.schema.Table, err)
	}
	defer rows.Close()

	docs := make([]*T, 0)
	for rows.Next() {
		doc, err := c.schema.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Find - scan %s row: %v", ErrScanRow, c.schema.Table, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Find - rows error: %v", ErrScanRow, err)
	}

	return docs, nil
}

// FindOne возвращает первый документ под фильтр или ErrNotFound
func (c *Collection[T]) FindOne(ctx context.Context, filter squirrel.Sqlizer) (*T, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	builder := psqlbuilder.Select(c.schema.Columns...).From(c.schema.Table).Limit(1)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOne - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := c.schema.Scan(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOne - scan %s row: %v", ErrScanRow, c.schema.Table, err)
	}

	return doc, nil
}

// UpdateOne применяет patch к документу под фильтр и возвращает число совпавших строк
// Фильтр должен адресовать один документ (по id)
func (c *Collection[T]) UpdateOne(ctx context.Context, filter squirrel.Sqlizer, patch map[string]interface{}) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	for field := range patch {
		if !c.hasField(field) {
			return 0, fmt.Errorf("%w: UpdateOne - %s.%s", ErrUnknownField, c.schema.Table, field)
		}
	}

	query, args, err := psqlbuilder.Update(c.schema.Table).
		SetMap(patch).
		Where(filter).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateOne - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateOne - execute update on %s: %v", ErrExecQuery, c.schema.Table, err)
	}

	matched, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateOne - get rows affected: %v", ErrExecQuery, err)
	}

	return matched, nil
}

// DeleteMany удаляет документы под фильтр (nil - все) и возвращает их число
func (c *Collection[T]) DeleteMany(ctx context.Context, filter squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	builder := psqlbuilder.Delete(c.schema.Table)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - execute delete on %s: %v", ErrExecQuery, c.schema.Table, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// Count считает документы под фильтр (nil - все)
func (c *Collection[T]) Count(ctx context.Context, filter squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	builder := psqlbuilder.Select("COUNT(*)").From(c.schema.Table)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build count query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count of %s: %v", ErrScanRow, c.schema.Table, err)
	}

	return count, nil
}

// Distinct возвращает уникальные непустые значения текстового поля
func (c *Collection[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, c.db)

	if !c.hasField(field) {
		return nil, fmt.Errorf("%w: Distinct - %s.%s", ErrUnknownField, c.schema.Table, field)
	}

	query, args, err := psqlbuilder.Select("DISTINCT " + field).
		From(c.schema.Table).
		Where(squirrel.NotEq{field: nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Distinct - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Distinct - execute query on %s: %v", ErrExecQuery, c.schema.Table, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: Distinct - scan %s: %v", ErrScanRow, field, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Distinct - rows error: %v", ErrScanRow, err)
	}

	return values, nil
}

func (c *Collection[T]) hasField(field string) bool {
	return slices.Contains(c.schema.Columns, field)
}
