package userapi

import "userapi/lib/telemetry"

var tracer = telemetry.Tracer("userapi/client")
