package model

// Environment is the deployment environment name.
type Environment string

const EnvironmentProduction Environment = "production"
