package models

const (
	FoodTypeVeg    = "veg"
	FoodTypeNonVeg = "nonveg"
)

// MenuItemModel is the parent row of the menu aggregate. Variants and addon links
// live in their own tables and are assembled by the catalog store.
type MenuItemModel struct {
	ID              int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string         `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Description     string         `json:"description" gorm:"column:description;type:text"`
	FoodType        string         `json:"food_type" gorm:"column:food_type;type:varchar(10);not null"`
	CategoriesID    int            `json:"categories_id" gorm:"column:categories_id;not null;index"`
	Category        *CategoryModel `json:"-" gorm:"foreignKey:CategoriesID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CategoryName    string         `json:"category_name" gorm:"->;-:migration"`
	PreparationTime int            `json:"preparation_time" gorm:"column:preparation_time;not null"`
	Status          int            `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (MenuItemModel) TableName() string { return "menu_items" }

// MenuVariantModel is owned by exactly one menu item.
type MenuVariantModel struct {
	ID          int            `json:"id" gorm:"primaryKey;autoIncrement"`
	MenuID      int            `json:"menu_id" gorm:"column:menu_id;not null;index"`
	Menu        *MenuItemModel `json:"-" gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	VariantType string         `json:"variant_type" gorm:"column:variant_type;type:varchar(100);not null"`
	Rate        float64        `json:"rate" gorm:"column:rate;type:decimal(10,2);not null"`
}

func (MenuVariantModel) TableName() string { return "menu_variants" }

// MenuAddonModel links a menu item to an addon. The pair is unique.
type MenuAddonModel struct {
	ID      int            `json:"id" gorm:"primaryKey;autoIncrement"`
	MenuID  int            `json:"menu_id" gorm:"column:menu_id;not null;uniqueIndex:idx_menu_addon_pair"`
	Menu    *MenuItemModel `json:"-" gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AddonID int            `json:"addon_id" gorm:"column:addon_id;not null;index;uniqueIndex:idx_menu_addon_pair"`
	Addon   *AddonModel    `json:"-" gorm:"foreignKey:AddonID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (MenuAddonModel) TableName() string { return "menu_addons" }
