package i18n

// Built-in en/ru dictionaries, carried over from the web UI's translation
// table. Keys the terminal client does not render yet are kept so an
// override file can address the full set.
var bundles = map[string]map[string]string{
	"en": {
		// Common
		"loading": "Loading...",
		"cancel":  "Cancel",
		"save":    "Save",
		"actions": "Actions",
		"noData":  "No data",

		// Navigation / tabs
		"pos":       "POS",
		"products":  "Products",
		"stock":     "Stock",
		"sales":     "Sales",
		"expenses":  "Expenses",
		"suppliers": "Suppliers",
		"orders":    "Orders",
		"writeoffs": "Write-offs",

		// Products
		"productName":     "Name",
		"price":           "Price",
		"ingredientsList": "Ingredients",
		"searchProducts":  "Search products...",

		// Stock
		"category": "Category",
		"quantity": "Quantity",
		"unit":     "Unit",

		// Sales
		"date":     "Date",
		"product":  "Product",
		"discount": "Discount (%)",
		"total":    "Total",

		// Suppliers
		"companyName":   "Company Name",
		"contactPerson": "Contact Person",
		"phone":         "Phone",
		"email":         "Email",
		"address":       "Address",

		// Write-offs
		"itemType": "Item Type",
		"reason":   "Reason",

		// Orders
		"status":         "Status",
		"createdDate":    "Created",
		"completionDate": "Completion",
		"additionalInfo": "Note",
		"pendingOnly":    "Pending only",

		// POS / order builder
		"orderItems":      "Current Order",
		"emptyOrder":      "No items in order",
		"emptyOrderHint":  "Select a product to add it",
		"subtotal":        "Subtotal",
		"completeNow":     "Complete Now",
		"createOrder":     "Create Order",
		"clearOrder":      "Clear",
		"processing":      "Processing...",
		"clearConfirm":    "Clear all items from order?",
		"orderCompleted":  "Order completed! Total: %s",
		"orderCreated":    "Order #%d created successfully!",
		"orderCleared":    "Order cleared",
		"itemAdded":       "Added %s",
		"itemRemoved":     "Item removed",
		"deleteConfirm":   "Delete %s?",
		"invalidDate":     "Enter a valid completion date",
		"dateInPast":      "Completion date must not be in the past",
		"completeConfirm": "Complete order #%d?",
		"quantitySet":     "Quantity updated",
		"invalidNumber":   "Enter a valid number",

		// Language
		"language": "Language",
		"english":  "English",
		"russian":  "Русский",
	},
	"ru": {
		// Common
		"loading": "Загрузка...",
		"cancel":  "Отмена",
		"save":    "Сохранить",
		"actions": "Действия",
		"noData":  "Нет данных",

		// Navigation / tabs
		"pos":       "Касса",
		"products":  "Товары",
		"stock":     "Запасы",
		"sales":     "Продажи",
		"expenses":  "Расходы",
		"suppliers": "Поставщики",
		"orders":    "Заказы",
		"writeoffs": "Списания",

		// Products
		"productName":     "Название",
		"price":           "Цена",
		"ingredientsList": "Ингредиенты",
		"searchProducts":  "Поиск товаров...",

		// Stock
		"category": "Категория",
		"quantity": "Количество",
		"unit":     "Единица",

		// Sales
		"date":     "Дата",
		"product":  "Товар",
		"discount": "Скидка (%)",
		"total":    "Итого",

		// Suppliers
		"companyName":   "Название компании",
		"contactPerson": "Контактное лицо",
		"phone":         "Телефон",
		"email":         "Email",
		"address":       "Адрес",

		// Write-offs
		"itemType": "Тип товара",
		"reason":   "Причина",

		// Orders
		"status":         "Статус",
		"createdDate":    "Создан",
		"completionDate": "Завершение",
		"additionalInfo": "Комментарий",
		"pendingOnly":    "Только ожидающие",

		// POS / order builder
		"orderItems":      "Текущий заказ",
		"emptyOrder":      "В заказе нет позиций",
		"emptyOrderHint":  "Выберите товар, чтобы добавить его",
		"subtotal":        "Подытог",
		"completeNow":     "Завершить сейчас",
		"createOrder":     "Создать заказ",
		"clearOrder":      "Очистить",
		"processing":      "Обработка...",
		"clearConfirm":    "Удалить все позиции из заказа?",
		"orderCompleted":  "Заказ завершён! Итого: %s",
		"orderCreated":    "Заказ №%d успешно создан!",
		"orderCleared":    "Заказ очищен",
		"itemAdded":       "Добавлено: %s",
		"itemRemoved":     "Позиция удалена",
		"deleteConfirm":   "Удалить %s?",
		"invalidDate":     "Введите корректную дату завершения",
		"dateInPast":      "Дата завершения не может быть в прошлом",
		"completeConfirm": "Завершить заказ №%d?",
		"quantitySet":     "Количество обновлено",
		"invalidNumber":   "Введите корректное число",

		// Language
		"language": "Язык",
		"english":  "English",
		"russian":  "Русский",
	},
}
