package services

// Services defined in this package:
// - CatalogService: venues, sessions, invigilators and access roles (faculty office)
// - SchedulingService: the exam registry and its transactional conflict check
// - InvigilatorService: atomic full-replace of an exam's invigilator roster
