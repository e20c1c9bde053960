package config

import "fmt"

// EnsureSchema creates the tables the application expects when they are
// missing. Existing tables are left untouched.
func EnsureSchema() error {
	if DB == nil {
		return fmt.Errorf("db not connected")
	}

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(100) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'tourist',
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS destinations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			location VARCHAR(255) NOT NULL DEFAULT '',
			unit_price DECIMAL(12,2) NOT NULL DEFAULT 0,
			guests_max INT NOT NULL DEFAULT 8,
			time_slots TEXT,
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			draft_token VARCHAR(64) NOT NULL DEFAULT '',
			user_id BIGINT NOT NULL,
			destination_id BIGINT NOT NULL,
			booking_date DATE NOT NULL,
			booking_time VARCHAR(50) NOT NULL,
			booking_type VARCHAR(50) NOT NULL,
			adults INT NOT NULL,
			children INT NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(100) NOT NULL,
			nationality VARCHAR(100) NOT NULL DEFAULT '',
			special_requests TEXT,
			newsletter_opt_in TINYINT(1) NOT NULL DEFAULT 0,
			payment_method VARCHAR(50) NOT NULL,
			total_price DECIMAL(12,2) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			payment_status VARCHAR(50) NOT NULL DEFAULT 'unpaid',
			rating INT NULL,
			rating_comment TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_draft_token (draft_token),
			KEY idx_user (user_id),
			KEY idx_destination (destination_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS wishlists (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			destination_id BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_user_destination (user_id, destination_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			booking_id BIGINT NULL,
			title VARCHAR(255) NOT NULL,
			body TEXT,
			is_read TINYINT(1) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, stmt := range ddl {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
