package storage

import (
	"database/sql"
	"fmt"
	"time"

	"pos-register/internal/domain"
)

// PostgresRepository implements the catalog, customer, order and user ports
// on a shared *sql.DB. Audit columns are owned here: created_at is written
// once on INSERT and never touched again; modified_at is refreshed on every
// UPDATE. Default lookups exclude soft-deleted rows.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			color VARCHAR(50) NOT NULL DEFAULT '#4CAF50',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			category_id INT NOT NULL REFERENCES categories(id),
			name VARCHAR(200) NOT NULL,
			description VARCHAR(500) NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			color VARCHAR(100) NOT NULL DEFAULT '#2196F3',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			address VARCHAR(500) NOT NULL,
			phone VARCHAR(15) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role VARCHAR(20) NOT NULL,
			full_name VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number VARCHAR(20) NOT NULL UNIQUE,
			order_type VARCHAR(20) NOT NULL,
			order_status VARCHAR(20) NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			amount_paid NUMERIC(10,2) NOT NULL,
			change NUMERIC(10,2) NOT NULL,
			user_id INT NOT NULL REFERENCES users(id),
			customer_id INT REFERENCES customers(id),
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id),
			menu_item_id INT NOT NULL,
			item_name VARCHAR(200) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// --- catalog ---

func (r *PostgresRepository) ListActiveCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, color, created_at, modified_at, is_active
		FROM categories
		WHERE is_active
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.CreatedAt, &c.ModifiedAt, &c.IsActive); err != nil {
			continue
		}
		categories = append(categories, c)
	}

	for i := range categories {
		items, err := r.ListActiveMenuItems(categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].MenuItems = items
	}
	return categories, nil
}

func (r *PostgresRepository) CreateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(`
		INSERT INTO categories (name, color)
		VALUES ($1, $2)
		RETURNING id, created_at, modified_at, is_active`,
		cat.Name, cat.Color,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.ModifiedAt, &cat.IsActive)
}

func (r *PostgresRepository) UpdateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(`
		UPDATE categories
		SET name=$1, color=$2, modified_at=now()
		WHERE id=$3 AND is_active
		RETURNING created_at, modified_at`,
		cat.Name, cat.Color, cat.ID,
	).Scan(&cat.CreatedAt, &cat.ModifiedAt)
}

func (r *PostgresRepository) ListActiveMenuItems(categoryID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, category_id, name, description, price, color, created_at, modified_at, is_active
		FROM menu_items
		WHERE category_id = $1 AND is_active
		ORDER BY name`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.CategoryID, &m.Name, &m.Description, &m.Price, &m.Color, &m.CreatedAt, &m.ModifiedAt, &m.IsActive); err != nil {
			continue
		}
		items = append(items, m)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, category_id, name, description, price, color, created_at, modified_at, is_active
		FROM menu_items
		WHERE id = $1 AND is_active`, id).
		Scan(&m.ID, &m.CategoryID, &m.Name, &m.Description, &m.Price, &m.Color, &m.CreatedAt, &m.ModifiedAt, &m.IsActive)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: menu item %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (category_id, name, description, price, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, modified_at, is_active`,
		item.CategoryID, item.Name, item.Description, item.Price, item.Color,
	).Scan(&item.ID, &item.CreatedAt, &item.ModifiedAt, &item.IsActive)
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	err := r.DB.QueryRow(`
		UPDATE menu_items
		SET category_id=$1, name=$2, description=$3, price=$4, color=$5, modified_at=now()
		WHERE id=$6 AND is_active
		RETURNING created_at, modified_at`,
		item.CategoryID, item.Name, item.Description, item.Price, item.Color, item.ID,
	).Scan(&item.CreatedAt, &item.ModifiedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: menu item %d", domain.ErrNotFound, item.ID)
	}
	return err
}

func (r *PostgresRepository) DeactivateMenuItem(id int) error {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET is_active = FALSE, modified_at = now()
		WHERE id = $1 AND is_active`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("%w: menu item %d", domain.ErrNotFound, id)
	}
	return nil
}

// --- customers ---

func (r *PostgresRepository) FindActiveByPhone(phone string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.DB.QueryRow(`
		SELECT id, name, address, phone, created_at, modified_at, is_active
		FROM customers
		WHERE phone = $1 AND is_active`, phone).
		Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.CreatedAt, &c.ModifiedAt, &c.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCustomer(c *domain.Customer) error {
	return r.DB.QueryRow(`
		INSERT INTO customers (name, address, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, modified_at, is_active`,
		c.Name, c.Address, c.Phone,
	).Scan(&c.ID, &c.CreatedAt, &c.ModifiedAt, &c.IsActive)
}

func (r *PostgresRepository) UpdateCustomer(c *domain.Customer) error {
	// The phone is the lookup key and is never rewritten here.
	err := r.DB.QueryRow(`
		UPDATE customers
		SET name=$1, address=$2, modified_at=now()
		WHERE id=$3 AND is_active
		RETURNING created_at, modified_at`,
		c.Name, c.Address, c.ID,
	).Scan(&c.CreatedAt, &c.ModifiedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, c.ID)
	}
	return err
}

// --- users ---

func (r *PostgresRepository) FindActiveByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, role, full_name, created_at, modified_at, is_active
		FROM users
		WHERE username = $1 AND is_active`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.CreatedAt, &u.ModifiedAt, &u.IsActive)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user %q", domain.ErrNotFound, username)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUser(id int) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, role, full_name, created_at, modified_at, is_active
		FROM users
		WHERE id = $1 AND is_active`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.CreatedAt, &u.ModifiedAt, &u.IsActive)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(u *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (username, password_hash, role, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, modified_at, is_active`,
		u.Username, u.PasswordHash, u.Role, u.FullName,
	).Scan(&u.ID, &u.CreatedAt, &u.ModifiedAt, &u.IsActive)
}

// --- orders ---

// CommitOrder writes the order, its items and any embedded new or modified
// customer in one transaction. A partial commit never escapes.
func (r *PostgresRepository) CommitOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if order.Customer != nil {
		if order.Customer.ID == 0 {
			if err := tx.QueryRow(`
				INSERT INTO customers (name, address, phone)
				VALUES ($1, $2, $3)
				RETURNING id, created_at, modified_at, is_active`,
				order.Customer.Name, order.Customer.Address, order.Customer.Phone,
			).Scan(&order.Customer.ID, &order.Customer.CreatedAt, &order.Customer.ModifiedAt, &order.Customer.IsActive); err != nil {
				return fmt.Errorf("create customer: %w", err)
			}
		} else {
			if _, err := tx.Exec(`
				UPDATE customers
				SET name=$1, address=$2, modified_at=now()
				WHERE id=$3 AND is_active`,
				order.Customer.Name, order.Customer.Address, order.Customer.ID,
			); err != nil {
				return fmt.Errorf("update customer: %w", err)
			}
		}
		id := order.Customer.ID
		order.CustomerID = &id
	}

	if err := tx.QueryRow(`
		INSERT INTO orders (order_number, order_type, order_status, total, amount_paid, change, user_id, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, modified_at`,
		order.OrderNumber, order.OrderType, order.OrderStatus,
		order.Total, order.AmountPaid, order.Change,
		order.UserID, order.CustomerID,
	).Scan(&order.ID, &order.CreatedAt, &order.ModifiedAt); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	order.IsActive = true

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, item_name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.ItemName, item.Price, item.Quantity,
		).Scan(&item.ID); err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) FindOrderByID(id int) (*domain.Order, error) {
	var o domain.Order
	err := r.DB.QueryRow(`
		SELECT id, order_number, order_type, order_status, total, amount_paid, change,
		       user_id, customer_id, created_at, modified_at, is_active
		FROM orders
		WHERE id = $1 AND is_active`, id).
		Scan(&o.ID, &o.OrderNumber, &o.OrderType, &o.OrderStatus, &o.Total, &o.AmountPaid, &o.Change,
			&o.UserID, &o.CustomerID, &o.CreatedAt, &o.ModifiedAt, &o.IsActive)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	if o.CustomerID != nil {
		var c domain.Customer
		err := r.DB.QueryRow(`
			SELECT id, name, address, phone, created_at, modified_at, is_active
			FROM customers
			WHERE id = $1`, *o.CustomerID).
			Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.CreatedAt, &c.ModifiedAt, &c.IsActive)
		if err == nil {
			o.Customer = &c
		}
	}
	return &o, nil
}

func (r *PostgresRepository) SaveOrderQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetOrderQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1 AND is_active`, orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) ListCompletedInRange(start, end time.Time) ([]domain.Order, error) {
	return r.listCompleted(`
		SELECT id, order_number, order_type, order_status, total, amount_paid, change,
		       user_id, customer_id, created_at, modified_at, is_active
		FROM orders
		WHERE order_status = 'Completed' AND is_active
		  AND created_at >= $1 AND created_at < $2
		ORDER BY created_at`, start, end)
}

func (r *PostgresRepository) ListCompletedForUserInRange(userID int, start, end time.Time) ([]domain.Order, error) {
	return r.listCompleted(`
		SELECT id, order_number, order_type, order_status, total, amount_paid, change,
		       user_id, customer_id, created_at, modified_at, is_active
		FROM orders
		WHERE order_status = 'Completed' AND is_active
		  AND user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at`, userID, start, end)
}

func (r *PostgresRepository) listCompleted(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.OrderType, &o.OrderStatus, &o.Total, &o.AmountPaid, &o.Change,
			&o.UserID, &o.CustomerID, &o.CreatedAt, &o.ModifiedAt, &o.IsActive); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, item_name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.ItemName, &item.Price, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
