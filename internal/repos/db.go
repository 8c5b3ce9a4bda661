package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the catalog database. The default DSN is ":memory:", so
// catalog and carts live exactly as long as the process.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog. pos orders the feed: new listings take min(pos)-1 so they
-- show up first while the seed catalog keeps its insertion order.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  brand TEXT NOT NULL,
  size TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  original_price NUMERIC NOT NULL DEFAULT 0,
  image TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  condition TEXT NOT NULL DEFAULT '',
  liked INTEGER NOT NULL DEFAULT 0,
  pos INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_pos   ON products(pos);
CREATE INDEX IF NOT EXISTS idx_products_liked ON products(liked);

-- Per-session bags. One row per product; adding again is a no-op.
CREATE TABLE IF NOT EXISTS cart_items(
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (session_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_cart_items_session ON cart_items(session_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,brand,size,price,image,description,category,condition,liked,pos) VALUES
	  ('1','Vintage Nike Windbreaker','Nike','L • 90s Original',80,
	   'https://lh3.googleusercontent.com/aida-public/AB6AXuCNv-fjDOC24o6ViAHCh71FYjADAkfeXfbXA9P9vWEOThl_7L4WEZ_kF67JjOhWzaXYgKKZeHLGJ-y5ysmRjXZfpbUMymhhFEgQ26_Oi9k1BuXeTWsxh5WoMXIi44UwvB6R_3TY8f2MhN5Qv3Zf1IzH1db-0VZRRXGY8estL8Ea6905U804eaBIVuXlckxwLXr7Qsmp0taocorQ6FBzI885r2t8JDoWwEHE5YZ6MlfMruaRCsPiWHTwfGGRSCgj1VkXlUnyI9u3MsM',
	   'Iconic 90s colorblocking. Lightweight, water-resistant, and perfect for layering. Minor wear on the cuffs adds character.',
	   'Outerwear','Vintage',0,1),
	  ('2','Stussy Tee 1990','Stussy','M • Rare',45,
	   'https://lh3.googleusercontent.com/aida-public/AB6AXuBB7LN09aY3Yhcykf_EtsPm-EbFxrm9gNxeCfbxcpgQ5aWQC3YjAIDF-bjG37pTr36bz13jWESgwZaBEhkH7T2YfUB_73wqMaLSc9_U9gPpMv5Ml86qn3bRD_tC-KnutBeODXgdcCGz39MrOnYjwoc2mtB8jjPOG-M_dN2I3mtTVTB58UPQJg1nxFZK7I9MWVfkVzRJnRvAEt4R5GgpUOd-1tfWs-I_nbPpsh0XFSO4rbPQKKDHEwaQ-HEZSh7qzLB8WAaTep8ZP2w',
	   'Single stitch vintage Stussy. The graphic is still popping despite the age. A true collector piece for streetwear historians.',
	   'T-Shirts','Rare',1,2),
	  ('3','Supreme Hoodie','Supreme','XL • Mint',120,
	   'https://lh3.googleusercontent.com/aida-public/AB6AXuDW-EbsU3TDQN9borlFs2okDQi9atzhhuBrBgIXhcIK6rzS07xJ3WhijeMOJgSkUMjMhi7UPd63WF_kR1kpy0L_Avlq3afk36e61AdE6sB76oUlTRDsr9kWWsuYKRwY1a3-Q_Is4WlQ4CsLwZOtzsujViEggRI-vju4m3KjmtEMIoU3dHu9QJU045y2rVMDNhZ4EdWOvga1eUcVmam8sA1K4N8cfnaPklPhgGqQxURhS4xow11uqLhu2ji29Oo6QYEMl2ZUchbxZSw',
	   'Heavyweight cotton fleece. Box logo is pristine. This is from the FW18 drop. kept in storage, barely worn.',
	   'Outerwear','Mint',0,3),
	  ('4','Bape Camo Jacket','Bape','S • Japan Import',200,
	   'https://lh3.googleusercontent.com/aida-public/AB6AXuBU07ZZRQuZ9c8CStr2UYJjUs8EyF-GQffSe8fVRr8V2NP6rIGbWFc01_k-VASGXrAd1bFebM4hlSFTGVHQ221W8EWbZHm6TbwZArIrEAEGXih6Itwd51ZF5EZNguHLe37gq-kPgMSsi-Fb1vu48SFjdIYyWQTmT508VibUfDnYXB6gkjn8hpvLZEoCGM3NzbDyl892Ynxt9mp51NudHDC0rq8u8cNAN5Ehg6ty_D6sZRp3H9U4-CY57ivgCmocEKITiMfJhhYT8z4',
	   'Direct from Shibuya. The classic 1st Camo pattern. Full zip shark hood functionality. 100% authentic.',
	   'Outerwear','New',1,4),
	  ('5','Off-White Tee','Off-White','L • 2019',55,
	   'https://lh3.googleusercontent.com/aida-public/AB6AXuBjxx_CEckk5VRrrl6r13xKoonaWHyENCWo7y2Al3Of7Tp7Dw3-jt6rBwhhf5G5iux59-T21Iu699OWRK97wE2OkaekFgUJEll_1ktpR5M94V9aPKVryVGbhPClsp49SfiU8rkYJ-Ml8HIPB-xwNA-9TzNgu1i78OWg4w_XBdlRvOrEAPJCoceBzXT7IEB1m4W_KMCFeXsFTbkbiS7YabpNqi_L0g6-7fC50o8GoonYPJlF6L6rmoSm4K5yU8_GtCb5W660zycOV_I',
	   'Virgil Abloh era design. Industrial belt print on the back. Slightly oversized fit as intended.',
	   'T-Shirts','Used',0,5),
	  ('6','Levis Trucker 1980','Levis','M • Vintage',110,
	   'https://lh3.googleusercontent.com/aida-public/AB6AXuBxuy6TzeDpQcI9EY6NtXs_JJWSQJj74GzXoaW7zQMcLOp0-_foFTrM04woezkBoKw2DHUTXQ-z-bKjKoo4zjGohySAURyeDihZL3PQWUsZUkMd426Nc4sSjiBf_-_I1nnFKU55Z-BwhJolD_pffUbp65wxLT4eBsDWLvimu7ChXK6L2aMipB7FiHH2WSm7fW7iPeclazNV2YIUrYiAS5YPg9CbnzjhAM6GMh98Y6IysacGLhcTMl-LziiBUMXPuxLX-J4DGW2ptZY',
	   'Beautifully faded acid wash denim. Made in USA. Type III Trucker jacket with copper buttons.',
	   'Outerwear','Vintage',0,6)`)

	return tx.Commit()
}
