package main

// @title           House Price Estimator API
// @version         1.0
// @description     Form and JSON API for estimating house prices through a remote prediction service.
// @contact.name    API Support
// @contact.email   support@example.com
// @host            localhost:8080
// @BasePath        /
