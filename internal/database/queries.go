package database

// Table directory queries
const (
	InsertTableSQL = `
		INSERT INTO tables (table_number, qr_code, capacity, is_occupied, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	UpdateTableSQL = `
		UPDATE tables SET table_number = $1, qr_code = $2, capacity = $3, is_occupied = $4, location = $5
		WHERE id = $6`

	DeleteTableSQL = `DELETE FROM tables WHERE id = $1`

	GetTableByIDSQL = `
		SELECT id, table_number, qr_code, capacity, is_occupied, location
		FROM tables WHERE id = $1`

	GetTableByNumberSQL = `
		SELECT id, table_number, qr_code, capacity, is_occupied, location
		FROM tables WHERE table_number = $1`

	GetAllTablesSQL = `
		SELECT id, table_number, qr_code, capacity, is_occupied, location
		FROM tables ORDER BY id ASC`
)

// Order ledger queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (table_id, order_number, status, total_amount, payment_method, payment_status, customer_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, special_instructions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1, updated_at = $2
		WHERE id = $3`

	GetOrderByIDSQL = `
		SELECT o.id, o.table_id, t.table_number, o.order_number, o.status, o.total_amount,
			   o.payment_method, o.payment_status, o.customer_notes, o.created_at, o.updated_at
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		WHERE o.id = $1`

	GetAllOrdersSQL = `
		SELECT o.id, o.table_id, t.table_number, o.order_number, o.status, o.total_amount,
			   o.payment_method, o.payment_status, o.customer_notes, o.created_at, o.updated_at
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		ORDER BY o.created_at DESC`

	GetOrdersByTableSQL = `
		SELECT o.id, o.table_id, t.table_number, o.order_number, o.status, o.total_amount,
			   o.payment_method, o.payment_status, o.customer_notes, o.created_at, o.updated_at
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		WHERE o.table_id = $1
		ORDER BY o.created_at DESC`

	GetOrderItemsSQL = `
		SELECT id, order_id, product_id, quantity, unit_price, special_instructions
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`
)

// Request ledger queries
const (
	InsertTableRequestSQL = `
		INSERT INTO table_requests (table_id, request_type, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	UpdateTableRequestStatusSQL = `
		UPDATE table_requests SET status = $1, resolved_at = $2
		WHERE id = $3`

	GetTableRequestByIDSQL = `
		SELECT r.id, r.table_id, t.table_number, r.request_type, r.message, r.status, r.created_at, r.resolved_at
		FROM table_requests r
		JOIN tables t ON t.id = r.table_id
		WHERE r.id = $1`

	GetAllTableRequestsSQL = `
		SELECT r.id, r.table_id, t.table_number, r.request_type, r.message, r.status, r.created_at, r.resolved_at
		FROM table_requests r
		JOIN tables t ON t.id = r.table_id
		ORDER BY r.created_at DESC`

	GetTableRequestsByStatusSQL = `
		SELECT r.id, r.table_id, t.table_number, r.request_type, r.message, r.status, r.created_at, r.resolved_at
		FROM table_requests r
		JOIN tables t ON t.id = r.table_id
		WHERE r.status = $1
		ORDER BY r.created_at ASC`

	GetTableRequestsByTableSQL = `
		SELECT r.id, r.table_id, t.table_number, r.request_type, r.message, r.status, r.created_at, r.resolved_at
		FROM table_requests r
		JOIN tables t ON t.id = r.table_id
		WHERE r.table_id = $1
		ORDER BY r.created_at DESC`
)

// Menu catalog queries
const (
	InsertCategorySQL = `
		INSERT INTO categories (name, description, display_order)
		VALUES ($1, $2, $3)
		RETURNING id`

	UpdateCategorySQL = `
		UPDATE categories SET name = $1, description = $2, display_order = $3
		WHERE id = $4`

	DeleteCategorySQL = `DELETE FROM categories WHERE id = $1`

	GetCategoryByIDSQL = `
		SELECT id, name, description, display_order
		FROM categories WHERE id = $1`

	GetAllCategoriesSQL = `
		SELECT id, name, description, display_order
		FROM categories ORDER BY display_order ASC, id ASC`

	InsertProductSQL = `
		INSERT INTO products (category_id, name, description, price, image_url, is_available,
			is_vegan, is_vegetarian, preparation_time, calories, allergens)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	UpdateProductSQL = `
		UPDATE products SET category_id = $1, name = $2, description = $3, price = $4, image_url = $5,
			is_available = $6, is_vegan = $7, is_vegetarian = $8, preparation_time = $9, calories = $10, allergens = $11
		WHERE id = $12`

	DeleteProductSQL = `DELETE FROM products WHERE id = $1`

	GetProductByIDSQL = `
		SELECT id, category_id, name, description, price, image_url, is_available,
			   is_vegan, is_vegetarian, preparation_time, calories, allergens
		FROM products WHERE id = $1`

	GetAllProductsSQL = `
		SELECT id, category_id, name, description, price, image_url, is_available,
			   is_vegan, is_vegetarian, preparation_time, calories, allergens
		FROM products ORDER BY id ASC`

	GetProductsByCategorySQL = `
		SELECT id, category_id, name, description, price, image_url, is_available,
			   is_vegan, is_vegetarian, preparation_time, calories, allergens
		FROM products WHERE category_id = $1 ORDER BY id ASC`

	GetAvailableProductsSQL = `
		SELECT id, category_id, name, description, price, image_url, is_available,
			   is_vegan, is_vegetarian, preparation_time, calories, allergens
		FROM products WHERE is_available ORDER BY id ASC`
)
