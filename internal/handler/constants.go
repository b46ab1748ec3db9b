package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the public home page.
	RouteRoot = "/"
	// RouteAbout is the public about page.
	RouteAbout = "/about"
	// RouteGallery is the public gallery page.
	RouteGallery = "/gallery"
	// RouteContact is the public contact page.
	RouteContact = "/contact"

	// RouteAdmin is the admin dashboard.
	RouteAdmin = "/admin"
	// RouteAdminLogin is the admin login page.
	RouteAdminLogin = "/admin/login"
	// RouteAdminLogout is the admin logout action.
	RouteAdminLogout = "/admin/logout"
	// RouteAdminContent is the page-content editor.
	RouteAdminContent = "/admin/content"
	// RouteAdminImages is the image management listing.
	RouteAdminImages = "/admin/images"
	// RouteAdminVideos is the video management listing.
	RouteAdminVideos = "/admin/videos"
	// RouteAdminSettings is the site settings editor.
	RouteAdminSettings = "/admin/settings"
	// RouteAdminCredentials is the SMTP credentials editor.
	RouteAdminCredentials = "/admin/system-credentials"
	// RouteAdminSubmissions is the contact submissions listing.
	RouteAdminSubmissions = "/admin/contact-submissions"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamPageName is the page-name parameter pattern.
	RouteParamPageName = "/{pageName}"
)

// ItemsPerPage is the number of rows shown per admin listing page.
const ItemsPerPage = 10

// RecentSubmissionsLimit is how many submissions the credentials page previews.
const RecentSubmissionsLimit = 10
