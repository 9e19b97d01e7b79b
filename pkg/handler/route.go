package handler

// Route type
type Route string

const (
	// RouteGetStats dashboard numbers
	RouteGetStats Route = "getStats"
	// RouteGetAnnouncements all announcements
	RouteGetAnnouncements Route = "getAnnouncements"
	// RouteGetEvents all events
	RouteGetEvents Route = "getEvents"
	// RouteGetResources the resource tree including node ids
	RouteGetResources Route = "getResources"
	// RouteGetTimetable the timetable pointer
	RouteGetTimetable Route = "getTimetable"

	RouteAddAnnouncement    Route = "addAnnouncement"
	RouteUpdateAnnouncement Route = "updateAnnouncement"
	RouteDeleteAnnouncement Route = "deleteAnnouncement"

	RouteAddEvent    Route = "addEvent"
	RouteUpdateEvent Route = "updateEvent"
	RouteDeleteEvent Route = "deleteEvent"

	RouteUpdateTimetable Route = "updateTimetable"

	RouteAddResource       Route = "addResource"
	RouteRenameResource    Route = "renameResource"
	RouteUpdateResourceURL Route = "updateResourceURL"
	RouteRemoveResource    Route = "removeResource"

	// RouteReload load all collections again, discarding unsaved edits
	RouteReload Route = "reload"
	// RouteExport GET export/<collection>
	RouteExport Route = "export"
)
