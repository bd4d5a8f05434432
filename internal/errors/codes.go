package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The presentation layer maps these codes to user-facing messages.

const (
	// ==================== Catálogo (CATALOG_) ====================
	CatalogNotLoaded     = "CATALOG_NOT_LOADED"       // aún no hay catálogo cargado
	CatalogFetchFailed   = "CATALOG_FETCH_FAILED"     // no se pudo descargar el documento
	CatalogInvalidDoc    = "CATALOG_INVALID_DOCUMENT" // documento mal formado
	CatalogInvalidSource = "CATALOG_INVALID_SOURCE"   // dirección de origen inválida

	// ==================== Taller (BUILDER_) ====================
	BuilderIncomplete = "BUILDER_INCOMPLETE_SELECTION" // falta el paso obligatorio

	// ==================== Carrito (CART_) ====================
	CartItemNotFound = "CART_ITEM_NOT_FOUND" // artículo de catálogo desconocido
	CartLineNotFound = "CART_LINE_NOT_FOUND" // línea de carrito desconocida
	CartEmpty        = "CART_EMPTY"          // carrito vacío

	// ==================== Pedido (ORDER_) ====================
	OrderEmptyCart          = "ORDER_EMPTY_CART"           // no hay líneas que pedir
	OrderNotPending         = "ORDER_NOT_PENDING"          // no hay pedido en curso
	OrderPhoneNotConfigured = "ORDER_PHONE_NOT_CONFIGURED" // sin número de destino

	// ==================== Preferencias (PREFS_) ====================
	PrefsInvalidTheme = "PREFS_INVALID_THEME" // tema distinto de dark/light

	// ==================== Validación (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // entrada inválida
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // identificador inválido

	// ==================== Recurso (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // recurso inexistente

	// ==================== Interno (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // error del servidor
	InternalStorage     = "INTERNAL_STORAGE"      // error de almacenamiento
)
