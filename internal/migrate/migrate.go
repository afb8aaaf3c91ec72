package migrate

import (
	"context"

	"smartmenu-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto for gen_random_uuid()
	CreateChecks           bool // CHECK constraints for data integrity
	CreateIndexes          bool
	CreateFKsViaSQL        bool // FKs via SQL on top of GORM constraints
	CreateUpdatedAtTrigger bool
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateMenuDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting smart-menu database migration")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto extension", zap.Error(err))
			return err
		}
	}

	log.Info("creating catalog and order tables")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.OptionGroup{},
		&models.OptionValue{},
		&models.Voucher{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemOption{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at trigger", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("creating CHECK constraints")

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('ORDER_STATUS_NEW','ORDER_STATUS_CONFIRMED','ORDER_STATUS_IN_PROGRESS',
                    'ORDER_STATUS_OUT_FOR_DELIVERY','ORDER_STATUS_COMPLETED','ORDER_STATUS_CANCELLED'));
`).Error; err != nil {
			log.Error("failed to create status CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_amounts_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_amounts_non_negative
  CHECK (sub_total >= 0 AND delivery_fee >= 0 AND discount_amount >= 0 AND total_amount >= 0);
`).Error; err != nil {
			log.Error("failed to create orders amount CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create quantity CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_base_price_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_base_price_non_negative
  CHECK (base_price >= 0);
`).Error; err != nil {
			log.Error("failed to create base_price CHECK", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE vouchers
  DROP CONSTRAINT IF EXISTS chk_vouchers_type_allowed;
ALTER TABLE vouchers
  ADD CONSTRAINT chk_vouchers_type_allowed
  CHECK (type IN ('PERCENTAGE','FIXED'));
`).Error; err != nil {
			log.Error("failed to create voucher type CHECK", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("creating indexes")

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);
`).Error; err != nil {
			log.Error("failed to create ix_orders_status_created", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_products_category_display
ON products (category_id, display_order);
`).Error; err != nil {
			log.Error("failed to create ix_products_category_display", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_vouchers_code
ON vouchers (code);
`).Error; err != nil {
			log.Error("failed to create ux_vouchers_code", zap.Error(err))
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		log.Info("creating foreign keys")

		fks := []string{
			`ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_category,
  ADD CONSTRAINT fk_products_category
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE;`,
			`ALTER TABLE option_values
  DROP CONSTRAINT IF EXISTS fk_option_values_group,
  ADD CONSTRAINT fk_option_values_group
    FOREIGN KEY (option_group_id) REFERENCES option_groups(id) ON DELETE CASCADE;`,
			`ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`,
			`ALTER TABLE order_item_options
  DROP CONSTRAINT IF EXISTS fk_order_item_options_item,
  ADD CONSTRAINT fk_order_item_options_item
    FOREIGN KEY (order_item_id) REFERENCES order_items(id) ON DELETE CASCADE;`,
		}
		for _, stmt := range fks {
			if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
				log.Error("failed to create foreign key", zap.Error(err))
				return err
			}
		}
	}

	log.Info("smart-menu database migration finished")
	return nil
}
